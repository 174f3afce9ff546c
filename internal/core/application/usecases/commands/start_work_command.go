package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrStartWorkCommandIsNotConstructed = errors.New(
	"StartWorkCommand must be created via NewStartWorkCommand constructor",
)

// StartWorkCommand represents the assigned technician beginning work on site.
// An appointment is not a precondition; work may start directly from the
// Assigned status.
type StartWorkCommand struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewStartWorkCommand creates a command to start work on the given order on
// behalf of the actor.
func NewStartWorkCommand(actor services.Actor, orderID kernel.OrderID) (StartWorkCommand, error) {
	cmd := StartWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return StartWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartWorkCommandIsNotConstructed if validation fails.
func (c StartWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkCommandIsNotConstructed)
}

// Actor returns the identity invoking the command.
func (c StartWorkCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being worked on.
func (c StartWorkCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *StartWorkCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *StartWorkCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
