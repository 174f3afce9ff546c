package commands

import (
	"context"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
)

// StartWorkCommandHandler moves an order to Working. Only the technician the
// order is assigned to may start work on it.
type StartWorkCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewStartWorkCommandHandler creates a handler for starting work.
func NewStartWorkCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) StartWorkCommandHandler {
	return StartWorkCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the start work command and returns the updated order.
func (h StartWorkCommandHandler) Handle(ctx context.Context, cmd StartWorkCommand) (*order.Order, error) {
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

	if err = h.policy.Authorize(cmd.Actor(), services.OpStartWork, target); err != nil {
		return nil, err
	}

	if err = target.StartWork(); err != nil {
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
