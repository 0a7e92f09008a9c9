package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkRespondedCommandIsNotConstructed = errors.New(
	"MarkRespondedCommand must be created via NewMarkRespondedCommand constructor",
)

// MarkRespondedCommand represents a request to toggle an order's responded
// flag. The flag is operational tracking only and never changes the
// fulfillment status.
type MarkRespondedCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	responded bool

	guard guard.ConstructorGuard
}

// NewMarkRespondedCommand creates a command to set the responded flag.
func NewMarkRespondedCommand(orderID kernel.UUID, responded bool) (MarkRespondedCommand, error) {
	cmd := MarkRespondedCommand{
		responded: responded,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkRespondedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkRespondedCommand) Validate() error {
	return c.guard.Validate(ErrMarkRespondedCommandIsNotConstructed)
}

// OrderID returns the order whose flag is toggled.
func (c MarkRespondedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Responded returns the new flag value.
func (c MarkRespondedCommand) Responded() bool {
	return c.responded
}

func (c *MarkRespondedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
