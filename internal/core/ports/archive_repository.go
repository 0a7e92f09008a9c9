package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/archive"
	"fulfillment/internal/core/domain/model/kernel"
)

// ArchiveRepository defines the persistence contract for the append-only
// archive store. Records are inserted once, at termination time, inside the
// same transaction that marks the live order cancelled, and never mutated.
type ArchiveRepository interface {
	// Add persists an archived order snapshot with its items.
	// Returns archive.ErrAlreadyArchived if a snapshot for the same original
	// order already exists.
	Add(ctx context.Context, aggregate *archive.ArchivedOrder) error

	// GetByOriginalOrderID retrieves the snapshot taken from the given live order.
	GetByOriginalOrderID(ctx context.Context, orderID kernel.UUID) (*archive.ArchivedOrder, error)
}
