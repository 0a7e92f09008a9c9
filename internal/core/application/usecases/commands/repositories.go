// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ArchiveRepoFactory provides access to the archive repository within a transaction.
	ArchiveRepoFactory interface {
		ArchiveRepository() ports.ArchiveRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that touch a single order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ArchivalUoW manages transactions spanning the active order store and the
	// archive store. Used only by the archival coordinator, the one operation
	// that requires true multi-record atomicity: the archive insert and the
	// live-order update commit together or not at all.
	ArchivalUoW interface {
		TxManager
		OrderRepoFactory
		ArchiveRepoFactory
	}

	// ArchivalUoWFactory creates new archival unit of work instances.
	ArchivalUoWFactory interface {
		Create() ArchivalUoW
	}
)
