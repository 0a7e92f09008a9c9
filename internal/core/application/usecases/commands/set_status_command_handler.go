package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// SetStatusCommandHandler applies a status override to an order.
type SetStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetStatusCommandHandler creates a handler for status overrides.
func NewSetStatusCommandHandler(uowFactory OrderUoWFactory) SetStatusCommandHandler {
	return SetStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override and returns the updated order.
func (h SetStatusCommandHandler) Handle(ctx context.Context, cmd SetStatusCommand) (*order.Order, error) {
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

	if err = aggregate.OverrideStatus(cmd.Status(), time.Now().UTC()); err != nil {
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
