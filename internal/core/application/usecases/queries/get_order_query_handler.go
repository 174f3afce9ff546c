package queries

import (
	"context"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// GetOrderQueryHandler serves single-order lookups.
//
// A missing order is NotFound. An order outside the actor's read scope is
// Forbidden, not NotFound: the caller learns the order exists but may not
// see it, which matches how mutations on foreign orders behave.
type GetOrderQueryHandler struct {
	reader ports.OrderReader
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(reader ports.OrderReader, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		reader: reader,
		policy: policy,
	}
}

// Handle executes the query and returns the order read model.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	target, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if !h.policy.CanRead(query.Actor(), target) {
		return OrderResponse{}, errs.NewForbiddenError(
			query.Actor().Role.String(), services.OpRead.String())
	}

	return newOrderResponse(target), nil
}
