package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a request to transfer an order to a partner
// company. Transfer is the head-office step that hands a freshly received
// order over for field execution.
//
// The partner id is carried unvalidated; the handler resolves it only after
// the actor and the lifecycle transition have been checked, so authorization
// and transition errors take precedence over reference errors.
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	orderID   kernel.OrderID
	partnerID string

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to transfer the given order to
// the given partner on behalf of the actor.
func NewAssignPartnerCommand(
	actor services.Actor,
	orderID kernel.OrderID,
	partnerID string,
) (AssignPartnerCommand, error) {
	cmd := AssignPartnerCommand{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPartnerCommandIsNotConstructed if validation fails.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// Actor returns the identity invoking the command.
func (c AssignPartnerCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier of the order to transfer.
func (c AssignPartnerCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// PartnerID returns the id of the partner the order is transferred to.
func (c AssignPartnerCommand) PartnerID() string {
	return c.partnerID
}

func (c *AssignPartnerCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignPartnerCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
