// Package memstore provides the in-memory implementation of the order store
// and its unit of work.
//
// Consistency model:
//   - Committed state lives in DTO snapshots guarded by a store-level lock
//     that is held only for map reads and the pointer swap at commit.
//   - Each order additionally carries a write lock. A unit of work acquires
//     it on the transactional Get and releases it on Commit or Rollback, so
//     the whole validate-then-apply window of one order is serialized while
//     different orders proceed in parallel.
//   - Plain reads rebuild aggregates from the committed snapshots and never
//     touch the write locks, so readers do not block writers and a reader
//     always sees an order either before or after a transition, never
//     mid-mutation.
package memstore

import (
	"context"
	"sort"
	"sync"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

type record struct {
	writeMu sync.Mutex
	dto     OrderDTO
}

// Store is the in-memory order store. It serves snapshot reads directly and
// transactional access through the unit of work created by a
// UnitOfWorkFactory bound to it.
type Store struct {
	mu      sync.RWMutex
	records map[string]*record
	seq     map[int]int
}

// NewStore creates an empty order store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]*record),
		seq:     make(map[int]int),
	}
}

// Get retrieves a snapshot of the order with the given id.
// Returns an ObjectNotFoundError when the id does not resolve.
func (s *Store) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	s.mu.RLock()
	rec, ok := s.records[id.String()]
	if !ok {
		s.mu.RUnlock()
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	dto := rec.dto
	s.mu.RUnlock()

	return dto.toDomain()
}

// GetAll retrieves a snapshot of every stored order, sorted by id.
func (s *Store) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	dtos := make([]OrderDTO, 0, len(s.records))
	for _, rec := range s.records {
		dtos = append(dtos, rec.dto)
	}
	s.mu.RUnlock()

	sort.Slice(dtos, func(i, j int) bool { return dtos[i].ID < dtos[j].ID })

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// nextID allocates the next sequence number for the year. Allocations are
// not rolled back with a failed unit of work; gaps in the sequence are
// acceptable, duplicates are not.
func (s *Store) nextID(year int) (kernel.OrderID, error) {
	s.mu.Lock()
	s.seq[year]++
	seq := s.seq[year]
	s.mu.Unlock()

	return kernel.NewOrderID(year, seq)
}

// lockRecord acquires the per-order write lock for the given id and returns
// the locked record with its committed DTO. The caller owns the lock and
// releases it via unlock on the returned record.
func (s *Store) lockRecord(id string) (*record, OrderDTO, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, OrderDTO{}, errs.NewObjectNotFoundError("orderId", id)
	}

	rec.writeMu.Lock()

	// The record may have been replaced between the map read and the lock
	// acquisition; re-read the committed state now that we hold the lock.
	s.mu.RLock()
	dto := rec.dto
	s.mu.RUnlock()

	return rec, dto, nil
}

func (r *record) unlock() {
	r.writeMu.Unlock()
}

// commit publishes the staged DTOs. New orders get a fresh record, existing
// orders have their snapshot swapped in place.
func (s *Store) commit(staged map[string]OrderDTO) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, dto := range staged {
		if rec, ok := s.records[id]; ok {
			rec.dto = dto
			continue
		}
		s.records[id] = &record{dto: dto}
	}

	return nil
}

var _ ports.OrderReader = (*Store)(nil)
