package queries_test

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/core/domain/model/directory"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

var (
	adminActor      = services.Actor{ID: "u1", Role: services.RoleAdmin}
	partnerActor    = services.Actor{ID: "u3", Role: services.RolePartnerAdmin, PartnerID: "p1"}
	technicianActor = services.Actor{ID: "t1", Role: services.RoleTechnician}
)

// buildOrder walks a fresh order through real transitions to the wanted
// status using the given partner and technician ids.
func buildOrder(
	t *testing.T,
	seq int,
	name, phone string,
	status order.Status,
	partnerID, technicianID string,
	revenue, cost int64,
) *order.Order {
	t.Helper()

	id, err := kernel.NewOrderID(2024, seq)
	require.NoError(t, err)

	o, err := order.NewOrder(id,
		order.CustomerInfo{Name: name, Phone: phone, Address: "Seoul"},
		order.ServiceDetails{Type: "AC Cleaning", Revenue: revenue, Cost: cost},
		"", time.Now())
	require.NoError(t, err)

	if status == order.Receipt {
		return o
	}
	require.NoError(t, o.AssignPartner(directory.Partner{ID: partnerID, Status: directory.Active}))
	if status == order.Transferred {
		return o
	}
	require.NoError(t, o.AssignTechnician(
		directory.Technician{ID: technicianID, PartnerID: partnerID, Status: directory.Active}))
	if status == order.Assigned {
		return o
	}
	require.NoError(t, o.StartWork())
	if status == order.Working {
		return o
	}
	require.NoError(t, o.Complete(order.Photos{Before: "ref-b", After: "ref-a"}, time.Now()))
	require.Equal(t, status, o.Status())
	return o
}

// orderBook is a fixed mixed set used by the listing and dashboard tests:
// one untouched receipt, one order per partner in progress, and one
// completed order per partner.
func orderBook(t *testing.T) []*order.Order {
	t.Helper()
	return []*order.Order{
		buildOrder(t, 1, "Hong", "010-1111-2222", order.Receipt, "", "", 0, 0),
		buildOrder(t, 2, "Kim", "010-2222-3333", order.Transferred, "p1", "", 0, 0),
		buildOrder(t, 3, "Lee", "010-3333-4444", order.Assigned, "p2", "t2", 0, 0),
		buildOrder(t, 4, "Park", "010-4444-5555", order.Completed, "p1", "t1", 120000, 80000),
		buildOrder(t, 5, "Choi", "010-5555-6666", order.Completed, "p2", "t2", 90000, 50000),
	}
}
