// Package notify provides the notification dispatch adapter. The demo
// deployment has no real SMS or push channel, so dispatches are recorded in
// the structured log; swapping in a real channel only touches this package.
package notify

import (
	"context"
	"log/slog"

	"fieldops/internal/core/ports"
)

// SlogNotifier logs dispatched notifications. Dispatch returns immediately;
// delivery happens on a detached goroutine, so a slow channel can never hold
// up the committing caller.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Dispatch sends the notification. Fire-and-forget: the caller is never
// blocked and never learns about delivery failures.
func (n *SlogNotifier) Dispatch(_ context.Context, notification ports.Notification) {
	go func() {
		n.logger.Info("notification dispatched",
			"orderId", notification.OrderID.String(),
			"recipient", notification.Recipient,
			"message", notification.Message,
		)
	}()
}

var _ ports.Notifier = (*SlogNotifier)(nil)
