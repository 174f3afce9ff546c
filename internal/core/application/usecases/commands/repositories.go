// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
//
// Every mutating handler works through the same sequence: validate the command,
// open a unit of work, load the target order, authorize the actor against it,
// check the lifecycle transition, validate inputs and references, apply the
// change, commit. Notifications are dispatched only after a successful commit
// and never influence the outcome.
package commands

import (
	"context"

	"fieldops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// A unit of work additionally pins the orders it loads: between the
// transactional Get and the Commit no concurrent mutation of the same order
// can interleave, which is what makes validate-then-apply safe.
type (
	// TxManager handles transaction lifecycle.
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

	// OrderUoW manages a transaction over the order store.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... load, mutate, update
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new unit of work instances.
	// A fresh unit of work is created per command to isolate concurrent operations.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
