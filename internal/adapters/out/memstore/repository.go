package memstore

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/ports"
)

// Repository is the transactional order repository handed out by a unit of
// work. Reads acquire the per-order write lock, writes stage DTOs on the
// transaction until Commit publishes them.
type Repository struct {
	uow *UnitOfWork
}

// Get loads the order with the given id and pins it for the rest of the
// transaction: no other unit of work can mutate it until Commit or Rollback.
func (r *Repository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	key := id.String()

	if dto, ok := r.uow.staged[key]; ok {
		return dto.toDomain()
	}
	if dto, ok := r.uow.loaded[key]; ok {
		return dto.toDomain()
	}

	rec, dto, err := r.uow.store.lockRecord(key)
	if err != nil {
		return nil, err
	}

	r.uow.loaded[key] = dto
	r.uow.locked = append(r.uow.locked, rec)
	return dto.toDomain()
}

// GetAll retrieves a snapshot of every stored order. The snapshot does not
// include changes staged on this transaction.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	return r.uow.store.GetAll(ctx)
}

// NextID allocates the next order identifier for the year. The allocation
// survives a rollback; sequence gaps are acceptable, duplicates are not.
func (r *Repository) NextID(_ context.Context, year int) (kernel.OrderID, error) {
	if !r.uow.active {
		return kernel.OrderID{}, ErrNoActiveTransaction
	}

	return r.uow.store.nextID(year)
}

// Add stages a new order aggregate for publication at Commit.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.staged[aggregate.ID().String()] = fromDomain(aggregate)
	return nil
}

// Update stages changes to an existing order aggregate for publication at
// Commit.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.staged[aggregate.ID().String()] = fromDomain(aggregate)
	return nil
}

var _ ports.OrderRepository = (*Repository)(nil)
