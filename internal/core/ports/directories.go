package ports

import (
	"context"

	"fieldops/internal/core/domain/model/directory"
)

// PartnerDirectory resolves partner references. The core only ever reads it.
type PartnerDirectory interface {
	// GetPartner retrieves a partner record by id.
	// Returns an ObjectNotFoundError when the id does not resolve.
	GetPartner(ctx context.Context, id string) (directory.Partner, error)
}

// TechnicianDirectory resolves technician references. The core only ever reads it.
type TechnicianDirectory interface {
	// GetTechnician retrieves a technician record by id.
	// Returns an ObjectNotFoundError when the id does not resolve.
	GetTechnician(ctx context.Context, id string) (directory.Technician, error)
}

// ServiceItemDirectory resolves service item references used to derive the
// frozen revenue and cost of new orders. The core only ever reads it.
type ServiceItemDirectory interface {
	// GetServiceItem retrieves a service item record by id.
	// Returns an ObjectNotFoundError when the id does not resolve.
	GetServiceItem(ctx context.Context, id string) (directory.ServiceItem, error)
}
