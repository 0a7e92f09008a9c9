package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/archive"
)

// ArchiveOrderCommandHandler is the archival coordinator. It terminates an
// order by inserting an immutable snapshot into the archive store and marking
// the live order cancelled, inside one transaction: if any step fails, the
// whole operation aborts with no partial writes visible and the order remains
// in its pre-call state.
//
// The handler enforces the archival invariant: an order is never cancelled in
// the active store without its archive twin, and never archived while still
// mutable.
type ArchiveOrderCommandHandler struct {
	uowFactory ArchivalUoWFactory
}

// NewArchiveOrderCommandHandler creates the archival coordinator.
// Requires an ArchivalUoWFactory spanning both record stores.
func NewArchiveOrderCommandHandler(uowFactory ArchivalUoWFactory) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle terminates the order and returns the archive snapshot.
//
// Order of operations matters for the precondition check: the domain Cancel
// validates the current status against the reason before the snapshot is
// taken, so the snapshot records the pre-termination status.
func (h ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) (*archive.ArchivedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	archiveRepo := uow.ArchiveRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if err = aggregate.Status().ValidateCancel(cmd.Reason()); err != nil {
		return nil, err
	}

	snapshot, err := archive.SnapshotOrder(aggregate, cmd.Reason(), cmd.Notes(), cmd.ActorID(), now)
	if err != nil {
		return nil, err
	}

	if err = archiveRepo.Add(ctx, snapshot); err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(cmd.Reason(), cmd.Notes(), cmd.ActorID(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return snapshot, nil
}
