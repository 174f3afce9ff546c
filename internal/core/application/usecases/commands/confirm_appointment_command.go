package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrConfirmAppointmentCommandIsNotConstructed = errors.New(
	"ConfirmAppointmentCommand must be created via NewConfirmAppointmentCommand constructor",
)

// ConfirmAppointmentCommand represents a technician confirming a customer
// visit for a concrete date and time of day. The two parts are kept separate
// on the command; the aggregate combines them into the appointment date.
type ConfirmAppointmentCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	orderID   kernel.OrderID
	date      string
	timeOfDay string

	guard guard.ConstructorGuard
}

// NewConfirmAppointmentCommand creates a command to confirm an appointment
// for the given order on behalf of the actor.
func NewConfirmAppointmentCommand(
	actor services.Actor,
	orderID kernel.OrderID,
	date, timeOfDay string,
) (ConfirmAppointmentCommand, error) {
	cmd := ConfirmAppointmentCommand{
		date:      date,
		timeOfDay: timeOfDay,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return ConfirmAppointmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmAppointmentCommandIsNotConstructed if validation fails.
func (c ConfirmAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmAppointmentCommandIsNotConstructed)
}

// Actor returns the identity invoking the command.
func (c ConfirmAppointmentCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being appointed.
func (c ConfirmAppointmentCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Date returns the appointment date part, e.g. "2024-01-20".
func (c ConfirmAppointmentCommand) Date() string {
	return c.date
}

// TimeOfDay returns the appointment time part, e.g. "14:00".
func (c ConfirmAppointmentCommand) TimeOfDay() string {
	return c.timeOfDay
}

func (c *ConfirmAppointmentCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ConfirmAppointmentCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
