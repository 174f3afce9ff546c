// Package directory contains the read-only reference records the order
// lifecycle validates against: partners, technicians, and service items.
// These records have no lifecycle logic of their own; the core only ever
// reads them to resolve and check references.
package directory

// Status is the activity flag carried by every directory record.
type Status string

const (
	Active   Status = "active"
	Inactive Status = "inactive"
)

// IsActive reports whether the record may be referenced by new assignments.
func (s Status) IsActive() bool {
	return s == Active
}

// Partner is a partner company orders are transferred to.
type Partner struct {
	ID     string
	Name   string
	Region string
	Status Status
}

// Technician is a field technician employed by a partner. A technician can
// only be assigned to orders already transferred to their partner.
type Technician struct {
	ID        string
	Name      string
	PartnerID string
	Phone     string
	Status    Status
}

// ServiceItem is a priced catalog entry. When an order references a service
// item at creation, the item's price and cost are copied onto the order and
// frozen; later item price changes do not affect existing orders.
type ServiceItem struct {
	ID       string
	Name     string
	Category string
	Price    int64
	Cost     int64
	Status   Status
}
