package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// MarkRespondedCommandHandler toggles the responded flag on an order that is
// still pending or confirmed.
type MarkRespondedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkRespondedCommandHandler creates a handler for responded-flag updates.
func NewMarkRespondedCommandHandler(uowFactory OrderUoWFactory) MarkRespondedCommandHandler {
	return MarkRespondedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated order.
func (h MarkRespondedCommandHandler) Handle(ctx context.Context, cmd MarkRespondedCommand) (*order.Order, error) {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkResponded(cmd.Responded(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
