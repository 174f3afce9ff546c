package commands

import (
	"context"
	"fmt"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
)

// ConfirmAppointmentCommandHandler moves an order from Assigned to Appointed
// with a confirmed visit date and time.
//
// After a successful commit the customer is notified about the confirmed
// appointment. The dispatch is fire-and-forget: it is never awaited before
// the commit and a delivery failure does not affect the command outcome.
type ConfirmAppointmentCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	notifier   ports.Notifier
}

// NewConfirmAppointmentCommandHandler creates a handler for appointment confirmations.
func NewConfirmAppointmentCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	notifier ports.Notifier,
) ConfirmAppointmentCommandHandler {
	return ConfirmAppointmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
	}
}

// Handle processes the appointment confirmation command and returns the
// updated order.
func (h ConfirmAppointmentCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmAppointmentCommand,
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

	if err = h.policy.Authorize(cmd.Actor(), services.OpConfirmAppointment, target); err != nil {
		return nil, err
	}

	if err = target.ConfirmAppointment(cmd.Date(), cmd.TimeOfDay()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Dispatch(ctx, ports.Notification{
		OrderID:   target.ID(),
		Recipient: target.Phone(),
		Message: fmt.Sprintf("Your %s appointment is confirmed for %s",
			target.ServiceType(), target.AppointmentDate()),
	})

	return target, nil
}
