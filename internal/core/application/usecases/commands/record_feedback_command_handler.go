package commands

import (
	"context"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
)

// RecordFeedbackCommandHandler attaches customer feedback to a completed
// order. Feedback is data only and does not change the order's status.
type RecordFeedbackCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewRecordFeedbackCommandHandler creates a handler for feedback recording.
func NewRecordFeedbackCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) RecordFeedbackCommandHandler {
	return RecordFeedbackCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the feedback command and returns the updated order.
func (h RecordFeedbackCommandHandler) Handle(ctx context.Context, cmd RecordFeedbackCommand) (*order.Order, error) {
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

	if err = h.policy.Authorize(cmd.Actor(), services.OpRecordFeedback, target); err != nil {
		return nil, err
	}

	feedback, err := order.NewFeedback(cmd.Rating(), cmd.Comment())
	if err != nil {
		return nil, err
	}

	if err = target.RecordFeedback(feedback); err != nil {
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
