package queries

import (
	"context"
	"sort"
	"strings"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
)

// ListOrdersQueryHandler serves order listings.
//
// The role scope is applied first: orders outside the actor's scope are
// silently dropped, never reported as an error. Status filter and free-text
// search then narrow the visible set. Results are sorted by order id so
// pagination on top of the listing is stable.
type ListOrdersQueryHandler struct {
	reader ports.OrderReader
	policy services.AccessPolicy
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(reader ports.OrderReader, policy services.AccessPolicy) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		reader: reader,
		policy: policy,
	}
}

// Handle executes the query and returns the matching order read models.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.reader.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(query.Search()))

	responses := make([]OrderResponse, 0)
	for _, o := range all {
		if !h.policy.CanRead(query.Actor(), o) {
			continue
		}
		if query.Status() != order.Unknown && o.Status() != query.Status() {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}

		responses = append(responses, newOrderResponse(o))
	}

	sort.Slice(responses, func(i, j int) bool {
		return responses[i].ID < responses[j].ID
	})

	return responses, nil
}

// matchesSearch reports whether the lowercased term occurs in the order's id,
// customer name or phone number.
func matchesSearch(o *order.Order, term string) bool {
	return strings.Contains(strings.ToLower(o.ID().String()), term) ||
		strings.Contains(strings.ToLower(o.CustomerName()), term) ||
		strings.Contains(strings.ToLower(o.Phone()), term)
}
