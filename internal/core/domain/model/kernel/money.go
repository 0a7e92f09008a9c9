package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in the
// store currency. Amounts are carried as a float with two significant decimal
// places, matching what the payment and carrier collaborators exchange.
//
// The zero value is a valid zero amount, so Money can be embedded in restored
// aggregates without a constructor guard.
type Money struct {
	amount float64
}

// NewMoney creates a Money value. Negative amounts are rejected.
func NewMoney(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%f is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Amount returns the raw amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MultiplyByQuantity returns the amount scaled by a line-item quantity.
func (m Money) MultiplyByQuantity(quantity int) Money {
	return Money{amount: m.amount * float64(quantity)}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the amount with two decimals, for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
