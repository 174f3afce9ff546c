package queries

import (
	"errors"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the orders visible to the actor, optionally
// narrowed by a status filter and a free-text search over order id, customer
// name and phone number.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor, "WORKING", "hong")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor  services.Actor
	status order.Status
	search string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query. statusFilter is a status name as
// rendered by order.Status.String or empty for no filter; an unknown name is
// a validation error.
func NewListOrdersQuery(actor services.Actor, statusFilter, search string) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setActor(actor),
		query.setStatusFilter(statusFilter),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the identity invoking the query.
func (q ListOrdersQuery) Actor() services.Actor {
	return q.actor
}

// Status returns the status filter, order.Unknown when no filter was given.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// Search returns the free-text search term, empty for no search.
func (q ListOrdersQuery) Search() string {
	return q.search
}

func (q *ListOrdersQuery) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *ListOrdersQuery) setStatusFilter(statusFilter string) error {
	if statusFilter == "" {
		return nil
	}

	status, err := order.StatusFromString(statusFilter)
	if err != nil {
		return err
	}

	q.status = status
	return nil
}
