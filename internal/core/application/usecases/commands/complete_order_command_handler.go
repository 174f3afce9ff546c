package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
)

// CompleteOrderCommandHandler moves an order from Working to Completed and
// records the completion timestamp. Completed is terminal.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewCompleteOrderCommandHandler creates a handler for order completions.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the completion command and returns the completed order.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	target, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(cmd.Actor(), services.OpComplete, target); err != nil {
		return nil, err
	}

	if err = target.Complete(cmd.Photos(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
