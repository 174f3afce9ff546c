package commands

import (
	"context"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
)

// MarkUnableCommandHandler moves an order from Working to Unable. Unable is
// terminal: the order keeps the issue note and evidence for later review but
// accepts no further transitions.
type MarkUnableCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewMarkUnableCommandHandler creates a handler for unable reports.
func NewMarkUnableCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) MarkUnableCommandHandler {
	return MarkUnableCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the unable report and returns the updated order.
func (h MarkUnableCommandHandler) Handle(ctx context.Context, cmd MarkUnableCommand) (*order.Order, error) {
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

	if err = h.policy.Authorize(cmd.Actor(), services.OpMarkUnable, target); err != nil {
		return nil, err
	}

	if err = target.MarkUnable(cmd.Photos(), cmd.IssueNote()); err != nil {
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
