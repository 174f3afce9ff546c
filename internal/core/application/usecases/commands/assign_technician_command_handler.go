package commands

import (
	"context"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// AssignTechnicianCommandHandler moves an order from Transferred to Assigned
// by attaching a technician to it.
//
// The transition check runs before the technician reference is resolved: an
// order that is not in Transferred status reports an invalid transition even
// when the technician id does not exist. The resolved technician must be
// active and must belong to the partner the order was transferred to.
type AssignTechnicianCommandHandler struct {
	uowFactory  OrderUoWFactory
	policy      services.AccessPolicy
	technicians ports.TechnicianDirectory
}

// NewAssignTechnicianCommandHandler creates a handler for technician assignments.
func NewAssignTechnicianCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	technicians ports.TechnicianDirectory,
) AssignTechnicianCommandHandler {
	return AssignTechnicianCommandHandler{
		uowFactory:  uowFactory,
		policy:      policy,
		technicians: technicians,
	}
}

// Handle processes the technician assignment command and returns the updated order.
func (h AssignTechnicianCommandHandler) Handle(
	ctx context.Context,
	cmd AssignTechnicianCommand,
) (*order.Order, error) {
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

	if err = h.policy.Authorize(cmd.Actor(), services.OpAssignTechnician, target); err != nil {
		return nil, err
	}

	if err = target.ValidateAssignTechnician(); err != nil {
		return nil, err
	}

	if cmd.TechnicianID() == "" {
		return nil, errs.NewValueIsRequiredError("technicianId")
	}

	technician, err := h.technicians.GetTechnician(ctx, cmd.TechnicianID())
	if err != nil {
		return nil, err
	}

	if err = target.AssignTechnician(technician); err != nil {
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
