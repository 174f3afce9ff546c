package queries

import (
	"context"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
)

// GetDashboardStatsQueryHandler derives the dashboard counters from the
// order snapshot. Revenue and cost sums only include completed orders; the
// frozen per-order figures are summed, so later catalog price edits never
// shift historical numbers.
type GetDashboardStatsQueryHandler struct {
	reader ports.OrderReader
	policy services.AccessPolicy
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
func NewGetDashboardStatsQueryHandler(
	reader ports.OrderReader,
	policy services.AccessPolicy,
) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{
		reader: reader,
		policy: policy,
	}
}

// Handle executes the query and returns the counters over the visible orders.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	all, err := h.reader.GetAll(ctx)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	stats := DashboardStatsResponse{
		ByStatus: make(map[string]int),
	}

	for _, o := range all {
		if !h.policy.CanRead(query.Actor(), o) {
			continue
		}

		stats.Total++
		stats.ByStatus[o.Status().String()]++

		if o.Status() == order.Completed {
			stats.CompletedRevenue += o.Revenue()
			stats.CompletedCost += o.Cost()
		}
	}

	return stats, nil
}
