package commands

import (
	"errors"

	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new field-service
// order. Carries the customer contact details, the service classification and
// an optional catalog item reference the order's revenue and cost are derived
// from.
//
// The command only validates the acting identity. Payload fields are checked
// by the handler after authorization, so an unauthorized caller receives a
// Forbidden error regardless of what it sent.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor,
//	    "Hong", "010-1111-2222", "Seoul", "AC Cleaning", "svc1", "call ahead")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor services.Actor

	customerName  string
	phone         string
	address       string
	serviceType   string
	serviceItemID string
	memo          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order on behalf
// of the given actor.
func NewCreateOrderCommand(
	actor services.Actor,
	customerName, phone, address string,
	serviceType, serviceItemID, memo string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName:  customerName,
		phone:         phone,
		address:       address,
		serviceType:   serviceType,
		serviceItemID: serviceItemID,
		memo:          memo,
		guard:         guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the identity invoking the command.
func (c CreateOrderCommand) Actor() services.Actor {
	return c.actor
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the customer's contact phone number.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Address returns the service address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// ServiceType returns the service display label.
func (c CreateOrderCommand) ServiceType() string {
	return c.serviceType
}

// ServiceItemID returns the optional catalog item reference, empty when the
// order is created without one.
func (c CreateOrderCommand) ServiceItemID() string {
	return c.serviceItemID
}

// Memo returns the free-form note captured with the order.
func (c CreateOrderCommand) Memo() string {
	return c.memo
}

func (c *CreateOrderCommand) setActor(actor services.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
