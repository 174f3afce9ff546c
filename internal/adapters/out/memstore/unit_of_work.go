package memstore

import (
	"context"
	"errors"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/ports"
)

var (
	ErrTransactionAlreadyStarted = errors.New("transaction already started")
	ErrNoActiveTransaction       = errors.New("no active transaction")
)

// UnitOfWorkFactory creates unit of work instances bound to one store.
// Factory ensures each business operation gets a fresh unit of work with
// proper isolation from other concurrent operations.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work. Not safe for sharing between
// goroutines; create one per operation.
func (f *UnitOfWorkFactory) Create() commands.OrderUoW {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is a transaction over the in-memory store.
//
// Mutations are staged locally and only published on Commit. Every order
// loaded through the transactional repository is write-locked until the
// transaction ends, which serializes the validate-then-apply window per
// order. Rollback after a successful Commit is a no-op, so the usual
// defer-rollback pattern is safe.
type UnitOfWork struct {
	store *Store

	active bool
	loaded map[string]OrderDTO
	staged map[string]OrderDTO
	locked []*record
}

// Begin starts the transaction.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionAlreadyStarted
	}

	u.active = true
	u.loaded = make(map[string]OrderDTO)
	u.staged = make(map[string]OrderDTO)
	u.locked = nil
	return nil
}

// Commit publishes all staged changes and releases the order locks.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}

	if err := u.store.commit(u.staged); err != nil {
		return err
	}

	u.end()
	return nil
}

// Rollback discards staged changes and releases the order locks. Calling it
// on an already finished transaction does nothing.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}

	u.end()
	return nil
}

// OrderRepository returns the order repository bound to this transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &Repository{uow: u}
}

func (u *UnitOfWork) end() {
	// Unlock through the record pointers so a rekeyed store map can never
	// strand a held lock.
	for _, rec := range u.locked {
		rec.unlock()
	}

	u.active = false
	u.loaded = nil
	u.staged = nil
	u.locked = nil
}
