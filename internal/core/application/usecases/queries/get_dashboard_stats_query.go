package queries

import (
	"errors"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery computes operational counters over the orders
// visible to the actor. A partner administrator therefore sees the stats of
// their own partner only, while head office sees the whole book.
type GetDashboardStatsQuery struct { //nolint:recvcheck //using for validation
	actor services.Actor

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard stats query.
func NewGetDashboardStatsQuery(actor services.Actor) (GetDashboardStatsQuery, error) {
	query := GetDashboardStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setActor(actor); err != nil {
		return GetDashboardStatsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardStatsQueryIsNotConstructed if validation fails.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// Actor returns the identity invoking the query.
func (q GetDashboardStatsQuery) Actor() services.Actor {
	return q.actor
}

func (q *GetDashboardStatsQuery) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

// DashboardStatsResponse aggregates the visible order book: totals per
// status plus the revenue and cost booked on completed orders.
type DashboardStatsResponse struct {
	Total            int
	ByStatus         map[string]int
	CompletedRevenue int64
	CompletedCost    int64
}
