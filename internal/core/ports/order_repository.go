// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories over the record stores, the transactional unit
// of work, and the external carrier gateway. These interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates in
// the active order store. The store is the single writer-of-record for active
// orders; cancelled orders stay in it as status markers after archival.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using an
	// optimistic compare-and-swap on the aggregate's version. A lost race
	// returns errs.ErrConcurrentModification; line items are written at Add
	// time only and never mutated here.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by id, fully resolved with its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInFlight retrieves up to limit orders that are with the carrier
	// (status sent, shipped, or out-for-delivery) and carry a carrier order id.
	// Used by the status reconciler to bound the size of one sync run.
	GetAllInFlight(ctx context.Context, limit int) ([]*order.Order, error)
}
