package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrExpediateOrderCommandIsNotConstructed = errors.New(
	"ExpediateOrderCommand must be created via NewExpediateOrderCommand constructor",
)

// ExpediateOrderCommand represents a request to hand one confirmed order off
// to the carrier for shipment.
type ExpediateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewExpediateOrderCommand creates an expedition command for one order.
func NewExpediateOrderCommand(orderID kernel.UUID) (ExpediateOrderCommand, error) {
	cmd := ExpediateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ExpediateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpediateOrderCommand) Validate() error {
	return c.guard.Validate(ErrExpediateOrderCommandIsNotConstructed)
}

// OrderID returns the order to expediate.
func (c ExpediateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ExpediateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
