package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrAssignTechnicianCommandIsNotConstructed = errors.New(
	"AssignTechnicianCommand must be created via NewAssignTechnicianCommand constructor",
)

// AssignTechnicianCommand represents a request to assign a field technician
// to a transferred order. Invoked by head office or by the administrator of
// the partner the order was transferred to.
type AssignTechnicianCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	orderID      kernel.OrderID
	technicianID string

	guard guard.ConstructorGuard
}

// NewAssignTechnicianCommand creates a command to assign the given technician
// to the given order on behalf of the actor.
func NewAssignTechnicianCommand(
	actor services.Actor,
	orderID kernel.OrderID,
	technicianID string,
) (AssignTechnicianCommand, error) {
	cmd := AssignTechnicianCommand{
		technicianID: technicianID,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return AssignTechnicianCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignTechnicianCommandIsNotConstructed if validation fails.
func (c AssignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechnicianCommandIsNotConstructed)
}

// Actor returns the identity invoking the command.
func (c AssignTechnicianCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to assign.
func (c AssignTechnicianCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// TechnicianID returns the id of the technician to assign.
func (c AssignTechnicianCommand) TechnicianID() string {
	return c.technicianID
}

func (c *AssignTechnicianCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignTechnicianCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
