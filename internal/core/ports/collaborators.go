package ports

import (
	"context"

	"fieldops/internal/core/domain/model/kernel"
)

// Notification is a message for the customer or the field crew, e.g. an
// appointment confirmation.
type Notification struct {
	OrderID   kernel.OrderID
	Recipient string
	Message   string
}

// Notifier dispatches notifications to an external delivery channel.
// Dispatch is fire-and-forget: it is invoked only after a state transition
// has committed, implementations must not block the caller on delivery, and
// delivery failure never rolls the transition back.
type Notifier interface {
	Dispatch(ctx context.Context, notification Notification)
}

// PhotoStorage resolves an uploaded image to a stable opaque reference.
// The reference is what transitions such as complete and markUnable carry;
// the core never interprets image content.
type PhotoStorage interface {
	Resolve(ctx context.Context, content []byte) (string, error)
}
