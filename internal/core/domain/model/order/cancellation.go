package order

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// CancellationReason classifies why an order was terminated.
type CancellationReason int

const (
	// ReasonUnknown represents an invalid or undefined reason.
	ReasonUnknown CancellationReason = iota

	// ReasonClientCancelled means the customer asked to cancel the order.
	ReasonClientCancelled

	// ReasonNoResponse means the customer never answered confirmation attempts.
	ReasonNoResponse
)

func getReasonStrings() map[CancellationReason]string {
	return map[CancellationReason]string{
		ReasonClientCancelled: "client-cancelled",
		ReasonNoResponse:      "no-response",
	}
}

// ReasonFromString resolves a cancellation reason token.
func ReasonFromString(s string) (CancellationReason, error) {
	for reason, token := range getReasonStrings() {
		if token == s {
			return reason, nil
		}
	}
	return ReasonUnknown, errs.NewValueIsInvalidErrorWithCause(
		"reason",
		fmt.Errorf("%q is not a valid cancellation reason", s),
	)
}

// Validate checks that the reason is one of the known values.
func (r CancellationReason) Validate() error {
	if _, ok := getReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%d is not a valid reason", r))
	}
	return nil
}

// String returns the canonical token of the reason, or "unknown".
func (r CancellationReason) String() string {
	if str, ok := getReasonStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Cancellation captures who terminated an order, when, and why.
// It is recorded on the live order and copied into the archive snapshot.
type Cancellation struct {
	reason      CancellationReason
	notes       string
	cancelledBy kernel.UUID
	cancelledAt time.Time
}

// NewCancellation creates cancellation metadata. The reason and actor are
// required; notes are free text for the operator.
func NewCancellation(reason CancellationReason, notes string, cancelledBy kernel.UUID, cancelledAt time.Time) (Cancellation, error) {
	if err := reason.Validate(); err != nil {
		return Cancellation{}, err
	}
	if err := cancelledBy.Validate(); err != nil {
		return Cancellation{}, err
	}
	if cancelledAt.IsZero() {
		return Cancellation{}, errs.NewValueIsRequiredError("cancelledAt")
	}

	return Cancellation{
		reason:      reason,
		notes:       notes,
		cancelledBy: cancelledBy,
		cancelledAt: cancelledAt,
	}, nil
}

// Reason returns the cancellation reason code.
func (c Cancellation) Reason() CancellationReason {
	return c.reason
}

// Notes returns the operator's free-text notes.
func (c Cancellation) Notes() string {
	return c.notes
}

// CancelledBy returns the actor who terminated the order.
func (c Cancellation) CancelledBy() kernel.UUID {
	return c.cancelledBy
}

// CancelledAt returns when the order was terminated.
func (c Cancellation) CancelledAt() time.Time {
	return c.cancelledAt
}
