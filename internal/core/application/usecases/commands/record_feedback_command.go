package commands

import (
	"errors"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrRecordFeedbackCommandIsNotConstructed = errors.New(
	"RecordFeedbackCommand must be created via NewRecordFeedbackCommand constructor",
)

// RecordFeedbackCommand represents the technician capturing customer feedback
// after a completed visit. Rating and comment are carried raw; the rating
// range is enforced by the feedback value object in the handler.
type RecordFeedbackCommand struct { //nolint:recvcheck //using for validation
	actor   services.Actor
	orderID kernel.OrderID
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewRecordFeedbackCommand creates a command to record feedback on the given
// order on behalf of the actor.
func NewRecordFeedbackCommand(
	actor services.Actor,
	orderID kernel.OrderID,
	rating int,
	comment string,
) (RecordFeedbackCommand, error) {
	cmd := RecordFeedbackCommand{
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return RecordFeedbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordFeedbackCommandIsNotConstructed if validation fails.
func (c RecordFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrRecordFeedbackCommandIsNotConstructed)
}

// Actor returns the identity invoking the command.
func (c RecordFeedbackCommand) Actor() services.Actor {
	return c.actor
}

// OrderID returns the identifier of the order the feedback belongs to.
func (c RecordFeedbackCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Rating returns the customer satisfaction rating.
func (c RecordFeedbackCommand) Rating() int {
	return c.rating
}

// Comment returns the free-form feedback comment.
func (c RecordFeedbackCommand) Comment() string {
	return c.comment
}

func (c *RecordFeedbackCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RecordFeedbackCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
