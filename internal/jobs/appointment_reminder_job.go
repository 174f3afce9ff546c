package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// AppointmentReminderJob periodically scans the order book for confirmed
// appointments and reminds the customer. Each appointment is reminded once;
// a rescheduled appointment (new appointment date after the order moved back
// through the lifecycle) is treated as new.
type AppointmentReminderJob struct {
	reader   ports.OrderReader
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger

	mu       sync.Mutex
	reminded map[string]string // order id -> appointment date already reminded
}

// NewAppointmentReminderJob creates the reminder job over the given order
// reader and notifier.
func NewAppointmentReminderJob(
	reader ports.OrderReader,
	notifier ports.Notifier,
	logger *slog.Logger,
) *AppointmentReminderJob {
	return &AppointmentReminderJob{
		reader:   reader,
		notifier: notifier,
		cron:     cron.New(),
		logger:   logger.With("component", "appointment_reminder_job"),
		reminded: make(map[string]string),
	}
}

// Start begins the reminder job, scanning once a minute.
func (j *AppointmentReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Appointment reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *AppointmentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Appointment reminder job stopped")
}

// Run executes one scan. Exported so the scheduler and tests share the same
// code path.
func (j *AppointmentReminderJob) Run() {
	ctx := context.Background()

	orders, err := j.reader.GetAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Appointment reminder scan failed", "error", err)
		return
	}

	for _, o := range orders {
		if o.Status() != order.Appointed {
			continue
		}

		if !j.markReminded(o.ID().String(), o.AppointmentDate()) {
			continue
		}

		j.notifier.Dispatch(ctx, ports.Notification{
			OrderID:   o.ID(),
			Recipient: o.Phone(),
			Message: fmt.Sprintf("Reminder: your %s visit is scheduled for %s",
				o.ServiceType(), o.AppointmentDate()),
		})
	}
}

// markReminded records the appointment and reports whether it still needed a
// reminder.
func (j *AppointmentReminderJob) markReminded(id, appointmentDate string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.reminded[id] == appointmentDate {
		return false
	}
	j.reminded[id] = appointmentDate
	return true
}
