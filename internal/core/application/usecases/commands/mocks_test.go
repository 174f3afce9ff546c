package commands_test

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/directory"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextID(ctx context.Context, year int) (kernel.OrderID, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPartnerDirectory struct{ mock.Mock }

func (m *MockPartnerDirectory) GetPartner(ctx context.Context, id string) (directory.Partner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.Partner), args.Error(1)
}

type MockTechnicianDirectory struct{ mock.Mock }

func (m *MockTechnicianDirectory) GetTechnician(ctx context.Context, id string) (directory.Technician, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.Technician), args.Error(1)
}

type MockServiceItemDirectory struct{ mock.Mock }

func (m *MockServiceItemDirectory) GetServiceItem(ctx context.Context, id string) (directory.ServiceItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.ServiceItem), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Dispatch(ctx context.Context, notification ports.Notification) {
	m.Called(ctx, notification)
}

var (
	adminActor      = services.Actor{ID: "u1", Role: services.RoleAdmin}
	partnerActor    = services.Actor{ID: "u3", Role: services.RolePartnerAdmin, PartnerID: "p1"}
	technicianActor = services.Actor{ID: "t1", Role: services.RoleTechnician}
)

func testOrderID(t *testing.T) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(2024, 1)
	require.NoError(t, err)
	return id
}

// orderInStatus builds an order and walks it through real transitions up to
// the wanted status. Partner p1 and technician t1 are used along the way.
func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(testOrderID(t),
		order.CustomerInfo{Name: "Hong", Phone: "010-1111-2222", Address: "Seoul"},
		order.ServiceDetails{Type: "AC Cleaning"}, "", time.Now())
	require.NoError(t, err)

	steps := []struct {
		upTo  order.Status
		apply func() error
	}{
		{order.Transferred, func() error {
			return o.AssignPartner(directory.Partner{ID: "p1", Status: directory.Active})
		}},
		{order.Assigned, func() error {
			return o.AssignTechnician(directory.Technician{ID: "t1", PartnerID: "p1", Status: directory.Active})
		}},
		{order.Appointed, func() error { return o.ConfirmAppointment("2024-01-20", "14:00") }},
		{order.Working, func() error { return o.StartWork() }},
		{order.Completed, func() error {
			return o.Complete(order.Photos{Before: "ref-b", After: "ref-a"}, time.Now())
		}},
	}

	for _, step := range steps {
		if o.Status() == status {
			return o
		}
		require.NoError(t, step.apply())
	}

	require.Equal(t, status, o.Status())
	return o
}

// committedUoW wires a unit of work mock for the happy path: begin, repo
// handout, commit and the deferred rollback.
func committedUoW(repo *MockOrderRepository) (*MockOrderUoW, *MockOrderUoWFactory) {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

// abortedUoW wires a unit of work mock for a path that fails after load:
// begin, repo handout, rollback, no commit.
func abortedUoW(repo *MockOrderRepository) (*MockOrderUoW, *MockOrderUoWFactory) {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}
