package commands_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/directory"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(adminActor,
		"Hong", "010-1111-2222", "Seoul", "AC Cleaning", "", "call ahead")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextID", mock.Anything, mock.AnythingOfType("int")).Return(testOrderID(t), nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy(), new(MockServiceItemDirectory))
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Receipt, created.Status())
	assert.Equal(t, "Hong", created.CustomerName())
	assert.Equal(t, "call ahead", created.Memo())
	assert.False(t, created.ReceivedAt().IsZero())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DerivesRevenueFromServiceItem(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(adminActor,
		"Hong", "010-1111-2222", "Seoul", "AC Cleaning", "svc1", "")
	require.NoError(t, err)

	items := new(MockServiceItemDirectory)
	items.On("GetServiceItem", mock.Anything, "svc1").
		Return(directory.ServiceItem{
			ID: "svc1", Name: "AC Cleaning", Price: 120000, Cost: 80000, Status: directory.Active,
		}, nil).Once()

	repo := new(MockOrderRepository)
	repo.On("NextID", mock.Anything, mock.AnythingOfType("int")).Return(testOrderID(t), nil).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	_, factory := committedUoW(repo)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy(), items)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "svc1", created.ServiceItemID())
	assert.Equal(t, int64(120000), created.Revenue())
	assert.Equal(t, int64(80000), created.Cost())
	items.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveServiceItem(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(adminActor,
		"Hong", "010-1111-2222", "Seoul", "AC Cleaning", "svc9", "")
	require.NoError(t, err)

	items := new(MockServiceItemDirectory)
	items.On("GetServiceItem", mock.Anything, "svc9").
		Return(directory.ServiceItem{ID: "svc9", Status: directory.Inactive}, nil).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy(), items)

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConstraintViolation)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ForbiddenRoles(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy(), new(MockServiceItemDirectory))

	for _, actor := range []services.Actor{partnerActor, technicianActor} {
		cmd, err := commands.NewCreateOrderCommand(actor,
			"Hong", "010-1111-2222", "Seoul", "AC Cleaning", "", "")
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden, actor.Role)
	}
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_MissingCustomerFields(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(adminActor, "", "", "Seoul", "AC Cleaning", "", "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("NextID", mock.Anything, mock.AnythingOfType("int")).Return(testOrderID(t), nil).Once()
	_, factory := abortedUoW(repo)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewAccessPolicy(), new(MockServiceItemDirectory))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	repo.AssertNotCalled(t, "Add")
}

func TestCreateOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), services.NewAccessPolicy(), new(MockServiceItemDirectory))

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(services.Actor{Role: services.RoleAdmin},
		"Hong", "010-1111-2222", "Seoul", "AC Cleaning", "", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
