package commands

import (
	"context"
	"time"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the next order identifier, derives the frozen revenue and cost
// from the referenced catalog item when one is given, and persists the order
// in Receipt status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, policy, serviceItems)
//	cmd, _ := NewCreateOrderCommand(actor, "Hong", "010-1111-2222", "Seoul", "AC Cleaning", "", "")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s received", created.ID())
type CreateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	policy       services.AccessPolicy
	serviceItems ports.ServiceItemDirectory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and the service
// item directory for revenue and cost derivation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	serviceItems ports.ServiceItemDirectory,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		policy:       policy,
		serviceItems: serviceItems,
	}
}

// Handle processes the order creation command.
// Only head-office roles may create orders. Revenue and cost are copied from
// the catalog item at this point and never change afterwards, even if the
// item's price is edited later.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.AuthorizeCreate(cmd.Actor()); err != nil {
		return nil, err
	}

	service := order.ServiceDetails{Type: cmd.ServiceType()}
	if cmd.ServiceItemID() != "" {
		item, err := h.serviceItems.GetServiceItem(ctx, cmd.ServiceItemID())
		if err != nil {
			return nil, err
		}
		if !item.Status.IsActive() {
			return nil, errs.NewConstraintViolationError("serviceItemId", item.ID, "service item is not active")
		}

		service.ItemID = item.ID
		service.Revenue = item.Price
		service.Cost = item.Cost
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	receivedAt := time.Now()
	id, err := repo.NextID(ctx, receivedAt.Year())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(id,
		order.CustomerInfo{Name: cmd.CustomerName(), Phone: cmd.Phone(), Address: cmd.Address()},
		service, cmd.Memo(), receivedAt)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
