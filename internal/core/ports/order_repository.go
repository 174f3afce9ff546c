// Package ports defines the contracts between the application core and its
// adapters: order storage, the read-only reference directories, and the
// fire-and-forget collaborators.
package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
)

// OrderReader provides read access to stored orders. Reads are served from
// snapshots: returned aggregates are copies and never share state with the
// store, so readers do not block writers.
type OrderReader interface {
	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError when the id does not resolve.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves a snapshot of every stored order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// OrderRepository is the persistence contract for order aggregates used by
// mutating command handlers. Implementations obtained through an OrderUoW
// additionally serialize the validate-then-apply window per order: between a
// transactional Get and the Commit, no concurrent mutation of the same order
// can interleave.
type OrderRepository interface {
	OrderReader

	// NextID allocates the next order identifier for the given year.
	// Allocated identifiers are unique across the store's lifetime.
	NextID(ctx context.Context, year int) (kernel.OrderID, error)

	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error
}
