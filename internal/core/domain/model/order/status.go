package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the fulfillment position of an order in the pipeline.
// It is independent of the payment axis and implements a state machine with
// defined transitions.
//
// State transitions:
//
//	Pending ──> Confirmed ──> PreSent ──> Sent ──> Shipped ──> OutForDelivery ──> Delivered
//	   │            │            │          │         │              │                │
//	   │            │            │          └─────────┴──────────────┴────> Returned <┘
//	   └────────────┴────────────┴──> Cancelled (terminal, via archival)
//
// Sent is entered through expedition (carrier handoff); Shipped, OutForDelivery,
// Delivered and Returned are entered through carrier status reconciliation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status set at checkout; the order awaits confirmation.
	Pending

	// Confirmed indicates an operator verified the order with the customer.
	Confirmed

	// PreSent indicates the order is packed and staged for carrier handoff.
	PreSent

	// Sent indicates the order was handed off to the carrier and carries tracking data.
	Sent

	// Shipped indicates the carrier reported the parcel moving toward the destination.
	Shipped

	// OutForDelivery indicates the carrier reported a delivery attempt in progress.
	OutForDelivery

	// Delivered indicates the carrier reported successful delivery.
	Delivered

	// Returned indicates the parcel came back; reachable from any post-expedition state.
	Returned

	// Cancelled is the terminal absorbing state, reached only through archival.
	Cancelled
)

// getStatusStrings returns a map of Status values to their canonical tokens.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		PreSent:        "pre-sent",
		Sent:           "sent",
		Shipped:        "shipped",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns only the statuses accepted from external input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		PreSent:        "pre-sent",
		Sent:           "sent",
		Shipped:        "shipped",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Returned:       "returned",
		Cancelled:      "cancelled",
	}
}

// StatusFromString resolves a status token against the allow-list of valid
// statuses. Unknown tokens are rejected, which is the only validation the
// low-level status override performs.
func StatusFromString(s string) (Status, error) {
	for status, token := range getValidStatusStrings() {
		if token == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status token", s),
	)
}

// Validate checks that the Status value is one of the allowed enum values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical token of the status, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateConfirm checks that confirmation is allowed from the current status.
// Only pending orders may be confirmed; this is the idempotency guard that
// makes a second confirm call fail.
func (s Status) ValidateConfirm() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}
	return nil
}

// Confirm transitions the status to Confirmed.
// Returns an error naming the current status if the order is not pending.
func (s Status) Confirm() (Status, error) {
	if err := s.ValidateConfirm(); err != nil {
		return 0, err
	}

	return Confirmed, nil
}

// ValidateExpediate checks that carrier handoff is allowed from the current status.
// Only confirmed orders may be expediated.
func (s Status) ValidateExpediate() error {
	if s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to expediate", s.String()),
		)
	}
	return nil
}

// Expediate transitions the status to Sent after a successful carrier handoff.
func (s Status) Expediate() (Status, error) {
	if err := s.ValidateExpediate(); err != nil {
		return 0, err
	}

	return Sent, nil
}

// ValidateCancel checks that termination with the given reason is allowed from
// the current status. Client cancellation is allowed up to and including
// pre-sent; the no-response reason only applies before packing starts.
func (s Status) ValidateCancel(reason CancellationReason) error {
	allowed := map[CancellationReason][]Status{
		ReasonClientCancelled: {Pending, Confirmed, PreSent},
		ReasonNoResponse:      {Pending, Confirmed},
	}

	for _, valid := range allowed[reason] {
		if s == valid {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s is not a valid status to cancel with reason %s", s.String(), reason.String()),
	)
}

// Cancel transitions the status to Cancelled.
// Returns an error naming the current status if termination is not allowed.
func (s Status) Cancel(reason CancellationReason) (Status, error) {
	if err := s.ValidateCancel(reason); err != nil {
		return 0, err
	}

	return Cancelled, nil
}

// ValidateMarkResponded checks that the responded flag may be toggled.
// The flag only makes operational sense before packing starts.
func (s Status) ValidateMarkResponded() error {
	if s != Pending && s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark responded", s.String()),
		)
	}
	return nil
}

// IsInFlight reports whether the order is with the carrier and eligible for
// status reconciliation.
func (s Status) IsInFlight() bool {
	return s == Sent || s == Shipped || s == OutForDelivery
}
