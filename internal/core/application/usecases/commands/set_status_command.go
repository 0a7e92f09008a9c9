package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrSetStatusCommandIsNotConstructed = errors.New(
	"SetStatusCommand must be created via NewSetStatusCommand constructor",
)

// SetStatusCommand represents a low-level, carrier-agnostic status override.
// The status token is validated against the enum allow-list at construction,
// but the transition graph is intentionally not consulted: the command exists
// for the status reconciler and administrative overrides that must be able to
// place an order anywhere in the pipeline.
type SetStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewSetStatusCommand creates a status override command from a raw token.
// Unknown tokens are rejected here, before any repository access.
func NewSetStatusCommand(orderID kernel.UUID, statusToken string) (SetStatusCommand, error) {
	cmd := SetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SetStatusCommand{}, err
	}
	if err := cmd.setStatus(statusToken); err != nil {
		return SetStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status is overridden.
func (c SetStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the resolved target status.
func (c SetStatusCommand) Status() order.Status {
	return c.status
}

func (c *SetStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetStatusCommand) setStatus(token string) error {
	status, err := order.StatusFromString(token)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
