package commands

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// MaxSyncBatchSize caps how many orders a single reconciliation run tracks
// against the carrier.
const MaxSyncBatchSize = 100

// SyncStatusesCommand requests a reconciliation of local order statuses with
// the carrier. With no explicit ids the handler picks every in-flight order
// up to MaxSyncBatchSize.
type SyncStatusesCommand struct {
	orderIDs []kernel.UUID

	isValid bool
}

// NewSyncStatusesCommand creates a reconciliation command for the given
// order ids. An empty slice means "all in-flight orders".
func NewSyncStatusesCommand(orderIDs []string) (SyncStatusesCommand, error) {
	if len(orderIDs) > MaxSyncBatchSize {
		return SyncStatusesCommand{}, errs.NewValueIsOutOfRangeError(
			"orderIDs", len(orderIDs), 0, MaxSyncBatchSize)
	}

	ids := make([]kernel.UUID, 0, len(orderIDs))
	for _, raw := range orderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return SyncStatusesCommand{}, errs.NewValueIsInvalidErrorWithCause("orderIDs", err)
		}
		ids = append(ids, id)
	}

	return SyncStatusesCommand{orderIDs: ids, isValid: true}, nil
}

// OrderIDs returns the explicit order ids, possibly empty.
func (c SyncStatusesCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Validate reports whether the command was built by the constructor.
func (c SyncStatusesCommand) Validate() error {
	if !c.isValid {
		return errs.NewValueIsRequiredError("sync statuses command")
	}
	return nil
}
