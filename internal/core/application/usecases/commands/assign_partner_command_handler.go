package commands

import (
	"context"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// AssignPartnerCommandHandler moves an order from Receipt to Transferred by
// attaching a partner company to it.
//
// The checks run in a fixed sequence: the order must exist, the actor must be
// authorized for it, the transition must be legal in the order's current
// status, and only then is the partner reference resolved and validated.
type AssignPartnerCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	partners   ports.PartnerDirectory
}

// NewAssignPartnerCommandHandler creates a handler for partner transfers.
func NewAssignPartnerCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	partners ports.PartnerDirectory,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		partners:   partners,
	}
}

// Handle processes the partner transfer command and returns the updated order.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) (*order.Order, error) {
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

	if err = h.policy.Authorize(cmd.Actor(), services.OpAssignPartner, target); err != nil {
		return nil, err
	}

	if err = target.ValidateAssignPartner(); err != nil {
		return nil, err
	}

	if cmd.PartnerID() == "" {
		return nil, errs.NewValueIsRequiredError("partnerId")
	}

	partner, err := h.partners.GetPartner(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	if err = target.AssignPartner(partner); err != nil {
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
