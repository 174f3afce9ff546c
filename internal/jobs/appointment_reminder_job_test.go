package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fieldops/internal/core/domain/model/directory"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/ports"
	"fieldops/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	orders []*order.Order
}

func (r *stubReader) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	for _, o := range r.orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, nil
}

func (r *stubReader) GetAll(_ context.Context) ([]*order.Order, error) {
	return r.orders, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []ports.Notification
}

func (n *recordingNotifier) Dispatch(_ context.Context, notification ports.Notification) {
	n.mu.Lock()
	n.sent = append(n.sent, notification)
	n.mu.Unlock()
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func appointedOrder(t *testing.T, seq int) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(2024, seq)
	require.NoError(t, err)
	o, err := order.NewOrder(id,
		order.CustomerInfo{Name: "Hong", Phone: "010-1111-2222", Address: "Seoul"},
		order.ServiceDetails{Type: "AC Cleaning"}, "", time.Now())
	require.NoError(t, err)
	require.NoError(t, o.AssignPartner(directory.Partner{ID: "p1", Status: directory.Active}))
	require.NoError(t, o.AssignTechnician(
		directory.Technician{ID: "t1", PartnerID: "p1", Status: directory.Active}))
	require.NoError(t, o.ConfirmAppointment("2024-01-20", "14:00"))
	return o
}

func TestAppointmentReminderJob_Run(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("reminds each appointment once", func(t *testing.T) {
		appointed := appointedOrder(t, 1)
		receipt, err := order.NewOrder(mustID(t, 2),
			order.CustomerInfo{Name: "Kim", Phone: "010-2222-3333", Address: "Busan"},
			order.ServiceDetails{Type: "AC Cleaning"}, "", time.Now())
		require.NoError(t, err)

		notifier := &recordingNotifier{}
		job := jobs.NewAppointmentReminderJob(
			&stubReader{orders: []*order.Order{appointed, receipt}}, notifier, logger)

		job.Run()
		job.Run()

		require.Equal(t, 1, notifier.count())
		assert.Equal(t, "010-1111-2222", notifier.sent[0].Recipient)
		assert.Contains(t, notifier.sent[0].Message, "2024-01-20 14:00")
	})

	t.Run("ignores orders without appointment", func(t *testing.T) {
		receipt, err := order.NewOrder(mustID(t, 3),
			order.CustomerInfo{Name: "Lee", Phone: "010-3333-4444", Address: "Daegu"},
			order.ServiceDetails{Type: "AC Cleaning"}, "", time.Now())
		require.NoError(t, err)

		notifier := &recordingNotifier{}
		job := jobs.NewAppointmentReminderJob(
			&stubReader{orders: []*order.Order{receipt}}, notifier, logger)

		job.Run()

		assert.Zero(t, notifier.count())
	})
}

func mustID(t *testing.T, seq int) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(2024, seq)
	require.NoError(t, err)
	return id
}
