package order

import (
	"errors"
	"strings"
	"time"

	"fieldops/internal/core/domain/model/directory"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// CustomerInfo carries the customer fields captured at order receipt.
// The values are opaque strings; the core only requires them to be non-empty.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

// ServiceDetails carries the service classification of an order. Type is the
// display label and is required. ItemID optionally references a catalog
// service item; when present, Revenue and Cost were derived from that item at
// creation time and are frozen on the order from then on.
type ServiceDetails struct {
	Type    string
	ItemID  string
	Revenue int64
	Cost    int64
}

// LifecycleState is the full mutable lifecycle portion of an order, used by
// RestoreOrder to rehydrate an aggregate from a stored snapshot.
type LifecycleState struct {
	Status          Status
	ReceivedAt      time.Time
	CompletedAt     *time.Time
	PartnerID       string
	TechnicianID    string
	AppointmentDate string
	Photos          Photos
	Feedback        *Feedback
	IssueNote       string
}

// Order represents a field-service order. It is the aggregate root that owns
// the order lifecycle from receipt through partner transfer, technician
// assignment, appointment, and work to completion.
//
// Order maintains these invariants:
//   - id is immutable and assigned at creation
//   - customer name, phone, address, and service type are non-empty
//   - a technician is set only if a partner is already set, and the
//     technician belongs to that partner
//   - completedAt is set exactly when status is Completed
//   - terminal statuses are absorbing
//   - every mutation is validate-then-apply: a failed operation leaves the
//     order unmodified
//
// All state changes go through the transition methods below; the struct uses
// private fields so no other code path can write status, assignments, or
// timestamps.
type Order struct {
	id kernel.OrderID

	customerName string
	phone        string
	address      string

	serviceType   string
	serviceItemID string
	revenue       int64
	cost          int64
	memo          string

	status          Status
	receivedAt      time.Time
	completedAt     *time.Time
	partnerID       string
	technicianID    string
	appointmentDate string
	photos          Photos
	feedback        *Feedback
	issueNote       string

	guard guard.ConstructorGuard
}

// NewOrder creates an order in the Receipt status. This is the only way to
// create a fresh order; bulk import paths also funnel through it.
//
// Parameters:
//   - id: identifier allocated by the store (unique per store lifetime)
//   - customer: name, phone, and address, all required
//   - service: display label (required) plus the optional frozen item reference
//   - memo: free-form note, set at creation only
//   - receivedAt: receipt timestamp, immutable afterwards
func NewOrder(
	id kernel.OrderID,
	customer CustomerInfo,
	service ServiceDetails,
	memo string,
	receivedAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Receipt,
		memo:   memo,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setService(service),
		o.setReceivedAt(receivedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from a stored snapshot without running
// transition rules. It still validates construction rules and the
// cross-field invariants, so a corrupted snapshot cannot produce an
// aggregate that violates them.
func RestoreOrder(
	id kernel.OrderID,
	customer CustomerInfo,
	service ServiceDetails,
	memo string,
	state LifecycleState,
) (*Order, error) {
	o := &Order{
		memo:  memo,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setService(service),
		o.setReceivedAt(state.ReceivedAt),
		state.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = state.Status
	o.completedAt = state.CompletedAt
	o.partnerID = state.PartnerID
	o.technicianID = state.TechnicianID
	o.appointmentDate = state.AppointmentDate
	o.photos = state.Photos
	o.feedback = state.Feedback
	o.issueNote = state.IssueNote

	if err := o.validateConsistency(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through one of
// the factory methods. Call it when receiving aggregates across a boundary.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the customer's contact phone number.
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the service address.
func (o *Order) Address() string {
	return o.address
}

// ServiceType returns the service display label.
func (o *Order) ServiceType() string {
	return o.serviceType
}

// ServiceItemID returns the referenced catalog item id, empty when the order
// was created without one.
func (o *Order) ServiceItemID() string {
	return o.serviceItemID
}

// Revenue returns the revenue frozen on the order at creation.
func (o *Order) Revenue() int64 {
	return o.revenue
}

// Cost returns the cost frozen on the order at creation.
func (o *Order) Cost() int64 {
	return o.cost
}

// Memo returns the free-form note captured at creation.
func (o *Order) Memo() string {
	return o.memo
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ReceivedAt returns the receipt timestamp.
func (o *Order) ReceivedAt() time.Time {
	return o.receivedAt
}

// CompletedAt returns the completion timestamp, nil unless the order is
// Completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// PartnerID returns the assigned partner's id, empty if not yet transferred.
func (o *Order) PartnerID() string {
	return o.partnerID
}

// TechnicianID returns the assigned technician's id, empty if unassigned.
func (o *Order) TechnicianID() string {
	return o.technicianID
}

// AppointmentDate returns the confirmed appointment as "<date> <time>",
// empty when no appointment has been confirmed.
func (o *Order) AppointmentDate() string {
	return o.appointmentDate
}

// Photos returns the evidence photo references attached to the order.
func (o *Order) Photos() Photos {
	return o.photos
}

// Feedback returns the customer feedback, nil until recorded.
func (o *Order) Feedback() *Feedback {
	return o.feedback
}

// IssueNote returns the reason the order could not be carried out, empty
// unless the order is Unable.
func (o *Order) IssueNote() string {
	return o.issueNote
}

// ValidateAssignPartner checks whether the order currently accepts a partner
// transfer, without resolving the partner reference. Handlers call this
// before directory lookups so terminal and transition errors take precedence
// over reference errors.
func (o *Order) ValidateAssignPartner() error {
	return o.status.ValidateAssignPartner()
}

// AssignPartner transfers the order to the given partner and moves it to
// Transferred. The partner must be active.
func (o *Order) AssignPartner(partner directory.Partner) error {
	newStatus, err := o.status.AssignPartner()
	if err != nil {
		return err
	}
	if partner.ID == "" {
		return errs.NewValueIsRequiredError("partnerId")
	}
	if !partner.Status.IsActive() {
		return errs.NewConstraintViolationError("partnerId", partner.ID, "partner is not active")
	}

	o.status = newStatus
	o.partnerID = partner.ID
	return nil
}

// ValidateAssignTechnician checks whether the order currently accepts a
// technician assignment, without resolving the technician reference.
func (o *Order) ValidateAssignTechnician() error {
	return o.status.ValidateAssignTechnician()
}

// AssignTechnician assigns the given technician and moves the order to
// Assigned. The technician must be active and must belong to the partner the
// order was transferred to.
func (o *Order) AssignTechnician(technician directory.Technician) error {
	newStatus, err := o.status.AssignTechnician()
	if err != nil {
		return err
	}
	if technician.ID == "" {
		return errs.NewValueIsRequiredError("technicianId")
	}
	if !technician.Status.IsActive() {
		return errs.NewConstraintViolationError("technicianId", technician.ID, "technician is not active")
	}
	if technician.PartnerID != o.partnerID {
		return errs.NewConstraintViolationError("technicianId", technician.ID,
			"technician does not belong to the order's partner")
	}

	o.status = newStatus
	o.technicianID = technician.ID
	return nil
}

// ConfirmAppointment confirms a customer appointment and moves the order to
// Appointed. Date and time are combined into the appointment date as
// "<date> <time>"; both must be non-empty.
func (o *Order) ConfirmAppointment(date, timeOfDay string) error {
	newStatus, err := o.status.ConfirmAppointment()
	if err != nil {
		return err
	}
	if strings.TrimSpace(date) == "" {
		return errs.NewValueIsRequiredError("date")
	}
	if strings.TrimSpace(timeOfDay) == "" {
		return errs.NewValueIsRequiredError("time")
	}

	o.status = newStatus
	o.appointmentDate = date + " " + timeOfDay
	return nil
}

// StartWork marks the technician as working on site. No additional input is
// required; an order may start directly from Assigned without an appointment.
func (o *Order) StartWork() error {
	newStatus, err := o.status.StartWork()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete finishes the order successfully. Both a before and an after photo
// reference are required; completedAt is recorded exactly once, here.
func (o *Order) Complete(photos Photos, completedAt time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	if !photos.HasBeforeAndAfter() {
		return errs.NewValueIsRequiredError("photos.before and photos.after")
	}
	if completedAt.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}

	o.status = newStatus
	o.photos = photos
	o.completedAt = &completedAt
	return nil
}

// MarkUnable finishes the order unsuccessfully. A non-empty issue note and at
// least one of the before or issue photo references are required.
func (o *Order) MarkUnable(photos Photos, issueNote string) error {
	newStatus, err := o.status.MarkUnable()
	if err != nil {
		return err
	}
	if strings.TrimSpace(issueNote) == "" {
		return errs.NewValueIsRequiredError("issueNote")
	}
	if !photos.HasIssueEvidence() {
		return errs.NewValueIsRequiredError("photos.before or photos.issue")
	}

	o.status = newStatus
	o.photos = photos
	o.issueNote = issueNote
	return nil
}

// Cancel withdraws the order. Permitted any time before work starts.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RecordFeedback attaches customer feedback to a completed order. Feedback
// does not change the order status.
func (o *Order) RecordFeedback(feedback Feedback) error {
	if err := feedback.Validate(); err != nil {
		return err
	}
	if o.status != Completed {
		return errs.NewConstraintViolationError("orderId", o.id.String(),
			"feedback is only accepted for completed orders")
	}

	o.feedback = &feedback
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer CustomerInfo) error {
	if strings.TrimSpace(customer.Name) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if strings.TrimSpace(customer.Phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if strings.TrimSpace(customer.Address) == "" {
		return errs.NewValueIsRequiredError("address")
	}

	o.customerName = customer.Name
	o.phone = customer.Phone
	o.address = customer.Address
	return nil
}

func (o *Order) setService(service ServiceDetails) error {
	if strings.TrimSpace(service.Type) == "" {
		return errs.NewValueIsRequiredError("serviceType")
	}
	if service.Revenue < 0 {
		return errs.NewValueIsInvalidError("revenue")
	}
	if service.Cost < 0 {
		return errs.NewValueIsInvalidError("cost")
	}

	o.serviceType = service.Type
	o.serviceItemID = service.ItemID
	o.revenue = service.Revenue
	o.cost = service.Cost
	return nil
}

func (o *Order) setReceivedAt(receivedAt time.Time) error {
	if receivedAt.IsZero() {
		return errs.NewValueIsRequiredError("receivedAt")
	}
	o.receivedAt = receivedAt
	return nil
}

// validateConsistency enforces the cross-field invariants on restored state.
func (o *Order) validateConsistency() error {
	if o.technicianID != "" && o.partnerID == "" {
		return errs.NewConstraintViolationError("technicianId", o.technicianID,
			"technician is set but the order has no partner")
	}
	if (o.completedAt != nil) != (o.status == Completed) {
		return errs.NewConstraintViolationError("completedAt", o.id.String(),
			"completedAt must be set exactly when the order is completed")
	}
	if o.status == Completed && !o.photos.HasBeforeAndAfter() {
		return errs.NewConstraintViolationError("photos", o.id.String(),
			"completed orders require before and after photos")
	}
	if o.status == Unable && (strings.TrimSpace(o.issueNote) == "" || !o.photos.HasIssueEvidence()) {
		return errs.NewConstraintViolationError("issueNote", o.id.String(),
			"unable orders require an issue note and issue evidence")
	}
	return nil
}
