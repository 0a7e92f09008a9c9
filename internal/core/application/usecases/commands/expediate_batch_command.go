package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// MaxExpeditionBatchSize bounds one batch expedition call. The limit is
// enforced at command construction, before any repository or network access.
const MaxExpeditionBatchSize = 100

var (
	ErrExpediateBatchCommandIsNotConstructed = errors.New(
		"ExpediateBatchCommand must be created via NewExpediateBatchCommand constructor",
	)

	// ErrBatchIsEmpty is returned when no order ids are given.
	ErrBatchIsEmpty = errors.New("expedition batch is empty")
)

// ExpediateBatchCommand represents a request to hand off up to
// MaxExpeditionBatchSize confirmed orders to the carrier in one call.
type ExpediateBatchCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewExpediateBatchCommand creates a batch expedition command.
// An empty batch and a batch over the size cap are both rejected here.
func NewExpediateBatchCommand(orderIDs []kernel.UUID) (ExpediateBatchCommand, error) {
	cmd := ExpediateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderIDs(orderIDs); err != nil {
		return ExpediateBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpediateBatchCommand) Validate() error {
	return c.guard.Validate(ErrExpediateBatchCommandIsNotConstructed)
}

// OrderIDs returns the orders to expediate.
func (c ExpediateBatchCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *ExpediateBatchCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrBatchIsEmpty
	}
	if len(orderIDs) > MaxExpeditionBatchSize {
		return errs.NewValueIsOutOfRangeError("orderIDs", len(orderIDs), 1, MaxExpeditionBatchSize)
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return fmt.Errorf("order id in batch: %w", err)
		}
	}

	c.orderIDs = orderIDs
	return nil
}
