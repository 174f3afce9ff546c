// Package refdata provides in-memory reference directories for partners,
// technicians and service items. Directory records are administered outside
// the order lifecycle; the core only resolves and reads them.
package refdata

import (
	"context"

	"fieldops/internal/core/domain/model/directory"
	"fieldops/internal/core/ports"
	"fieldops/internal/pkg/errs"
)

// Directory serves partner, technician and service item lookups from fixed
// in-memory maps. The maps are never mutated after construction, so lookups
// are safe for concurrent use.
type Directory struct {
	partners    map[string]directory.Partner
	technicians map[string]directory.Technician
	items       map[string]directory.ServiceItem
}

// NewDirectory creates a directory over the given records.
func NewDirectory(
	partners []directory.Partner,
	technicians []directory.Technician,
	items []directory.ServiceItem,
) *Directory {
	d := &Directory{
		partners:    make(map[string]directory.Partner, len(partners)),
		technicians: make(map[string]directory.Technician, len(technicians)),
		items:       make(map[string]directory.ServiceItem, len(items)),
	}

	for _, p := range partners {
		d.partners[p.ID] = p
	}
	for _, tech := range technicians {
		d.technicians[tech.ID] = tech
	}
	for _, item := range items {
		d.items[item.ID] = item
	}

	return d
}

// GetPartner retrieves a partner record by id.
func (d *Directory) GetPartner(_ context.Context, id string) (directory.Partner, error) {
	partner, ok := d.partners[id]
	if !ok {
		return directory.Partner{}, errs.NewObjectNotFoundError("partnerId", id)
	}
	return partner, nil
}

// GetTechnician retrieves a technician record by id.
func (d *Directory) GetTechnician(_ context.Context, id string) (directory.Technician, error) {
	technician, ok := d.technicians[id]
	if !ok {
		return directory.Technician{}, errs.NewObjectNotFoundError("technicianId", id)
	}
	return technician, nil
}

// GetServiceItem retrieves a service item record by id.
func (d *Directory) GetServiceItem(_ context.Context, id string) (directory.ServiceItem, error) {
	item, ok := d.items[id]
	if !ok {
		return directory.ServiceItem{}, errs.NewObjectNotFoundError("serviceItemId", id)
	}
	return item, nil
}

var (
	_ ports.PartnerDirectory     = (*Directory)(nil)
	_ ports.TechnicianDirectory  = (*Directory)(nil)
	_ ports.ServiceItemDirectory = (*Directory)(nil)
)

// NewSeededDirectory creates a directory preloaded with the demo dataset
// used by the application binary.
func NewSeededDirectory() *Directory {
	return NewDirectory(
		[]directory.Partner{
			{ID: "p1", Name: "CleanTech Seoul", Region: "Seoul", Status: directory.Active},
			{ID: "p2", Name: "AirCare Busan", Region: "Busan", Status: directory.Active},
			{ID: "p3", Name: "HomeFix Incheon", Region: "Incheon", Status: directory.Inactive},
		},
		[]directory.Technician{
			{ID: "t1", Name: "Kim Minsu", PartnerID: "p1", Phone: "010-9999-0001", Status: directory.Active},
			{ID: "t2", Name: "Lee Jiyoung", PartnerID: "p1", Phone: "010-9999-0002", Status: directory.Active},
			{ID: "t3", Name: "Park Junho", PartnerID: "p2", Phone: "010-9999-0003", Status: directory.Active},
			{ID: "t4", Name: "Choi Haneul", PartnerID: "p2", Phone: "010-9999-0004", Status: directory.Inactive},
		},
		[]directory.ServiceItem{
			{ID: "svc1", Name: "AC Cleaning", Category: "cleaning", Price: 120000, Cost: 80000, Status: directory.Active},
			{ID: "svc2", Name: "AC Installation", Category: "installation", Price: 250000, Cost: 170000, Status: directory.Active},
			{ID: "svc3", Name: "Filter Replacement", Category: "maintenance", Price: 40000, Cost: 15000, Status: directory.Active},
			{ID: "svc4", Name: "Legacy Gas Refill", Category: "maintenance", Price: 60000, Cost: 30000, Status: directory.Inactive},
		},
	)
}
