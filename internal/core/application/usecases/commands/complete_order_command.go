package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the technician finishing an order
// successfully. Photos carry opaque evidence references already resolved by
// photo storage; both a before and an after reference are required for the
// completion to go through.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	orderID kernel.OrderID
	photos  order.Photos

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the given order on
// behalf of the actor.
func NewCompleteOrderCommand(
	actor services.Actor,
	orderID kernel.OrderID,
	photos order.Photos,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		photos: photos,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// Actor returns the identity invoking the command.
func (c CompleteOrderCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Photos returns the evidence photo references attached to the completion.
func (c CompleteOrderCommand) Photos() order.Photos {
	return c.photos
}

func (c *CompleteOrderCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
