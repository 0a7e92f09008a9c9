package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand represents a request to terminate an order with reason
// client-cancelled or no-response: snapshot it into the archive and mark the
// live record cancelled in one atomic operation.
type ArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  order.CancellationReason
	notes   string
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveOrderCommand creates a termination command. The reason must be a
// known cancellation reason; notes are optional free text for the operator.
func NewArchiveOrderCommand(
	orderID kernel.UUID,
	reason order.CancellationReason,
	notes string,
	actorID kernel.UUID,
) (ArchiveOrderCommand, error) {
	cmd := ArchiveOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
		cmd.setActorID(actorID),
	); err != nil {
		return ArchiveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

// OrderID returns the order to terminate.
func (c ArchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the termination reason.
func (c ArchiveOrderCommand) Reason() order.CancellationReason {
	return c.reason
}

// Notes returns the operator's free-text notes.
func (c ArchiveOrderCommand) Notes() string {
	return c.notes
}

// ActorID returns the operator terminating the order.
func (c ArchiveOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ArchiveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ArchiveOrderCommand) setReason(reason order.CancellationReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}

func (c *ArchiveOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
