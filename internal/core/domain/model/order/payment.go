package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentMethod identifies how the customer pays.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// CashOnDelivery is settled with the carrier at the door.
	CashOnDelivery

	// CardPayment is settled online before fulfillment.
	CardPayment

	// BankTransfer is settled out of band against an invoice.
	BankTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		CashOnDelivery: "cash-on-delivery",
		CardPayment:    "card",
		BankTransfer:   "bank-transfer",
	}
}

// PaymentMethodFromString resolves a payment method token.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, token := range getPaymentMethodStrings() {
		if token == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks that the method is one of the known values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the canonical token of the method, or "unknown".
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatus tracks the payment axis, which is independent of the
// fulfillment status: a delivered order may still be unpaid and a cancelled
// one may need a refund.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined status.
	PaymentStatusUnknown PaymentStatus = iota

	// Unpaid means no payment has been received yet.
	Unpaid

	// Paid means the payment has been received.
	Paid

	// Refunded means a received payment was returned to the customer.
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		Unpaid:   "unpaid",
		Paid:     "paid",
		Refunded: "refunded",
	}
}

// PaymentStatusFromString resolves a payment status token.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, token := range getPaymentStatusStrings() {
		if token == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks that the status is one of the known values.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the canonical token of the status, or "unknown".
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Payment is a value object carrying the payment method and payment status.
type Payment struct {
	method PaymentMethod
	status PaymentStatus
}

// NewPayment creates a payment value from a valid method and status.
func NewPayment(method PaymentMethod, status PaymentStatus) (Payment, error) {
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	if err := status.Validate(); err != nil {
		return Payment{}, err
	}

	return Payment{method: method, status: status}, nil
}

// Method returns the payment method.
func (p Payment) Method() PaymentMethod {
	return p.method
}

// Status returns the payment status.
func (p Payment) Status() PaymentStatus {
	return p.status
}
