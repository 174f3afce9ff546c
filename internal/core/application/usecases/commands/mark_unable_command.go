package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrMarkUnableCommandIsNotConstructed = errors.New(
	"MarkUnableCommand must be created via NewMarkUnableCommand constructor",
)

// MarkUnableCommand represents the technician reporting that an order could
// not be carried out, e.g. no access to the site or unserviceable equipment.
// Requires a note describing the issue and photo evidence of it.
type MarkUnableCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	orderID   kernel.OrderID
	photos    order.Photos
	issueNote string

	guard guard.ConstructorGuard
}

// NewMarkUnableCommand creates a command to mark the given order unable on
// behalf of the actor.
func NewMarkUnableCommand(
	actor services.Actor,
	orderID kernel.OrderID,
	photos order.Photos,
	issueNote string,
) (MarkUnableCommand, error) {
	cmd := MarkUnableCommand{
		photos:    photos,
		issueNote: issueNote,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkUnableCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkUnableCommandIsNotConstructed if validation fails.
func (c MarkUnableCommand) Validate() error {
	return c.guard.Validate(ErrMarkUnableCommandIsNotConstructed)
}

// Actor returns the identity invoking the command.
func (c MarkUnableCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier of the order being marked unable.
func (c MarkUnableCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Photos returns the evidence photo references attached to the report.
func (c MarkUnableCommand) Photos() order.Photos {
	return c.photos
}

// IssueNote returns the description of why the work could not be done.
func (c MarkUnableCommand) IssueNote() string {
	return c.issueNote
}

func (c *MarkUnableCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkUnableCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
