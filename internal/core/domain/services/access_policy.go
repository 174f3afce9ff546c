package services

import (
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"
)

// Role identifies the kind of user invoking an operation.
type Role string

const (
	// RoleAdmin is the head-office administrator.
	RoleAdmin Role = "ADMIN"
	// RoleOperator is a head-office operator. Operators carry the same
	// order permissions as administrators.
	RoleOperator Role = "OPERATOR"
	// RolePartnerAdmin manages a single partner company and may only touch
	// orders transferred to that partner.
	RolePartnerAdmin Role = "PARTNER_ADMIN"
	// RoleTechnician is a field technician and may only touch orders
	// assigned to them.
	RoleTechnician Role = "TECHNICIAN"
)

// RoleFromString parses a role name as produced by String.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleOperator, RolePartnerAdmin, RoleTechnician:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidError("role")
	}
}

// Validate checks the role is one of the declared roles.
func (r Role) Validate() error {
	_, err := RoleFromString(string(r))
	return err
}

// String returns the canonical role name.
func (r Role) String() string {
	return string(r)
}

// Operation names an order operation for authorization purposes.
type Operation string

const (
	OpCreateOrder        Operation = "create"
	OpAssignPartner      Operation = "assignPartner"
	OpAssignTechnician   Operation = "assignTechnician"
	OpConfirmAppointment Operation = "confirmAppointment"
	OpStartWork          Operation = "startWork"
	OpComplete           Operation = "complete"
	OpMarkUnable         Operation = "markUnable"
	OpCancel             Operation = "cancel"
	OpRecordFeedback     Operation = "recordFeedback"
	OpRead               Operation = "read"
)

// String returns the operation name.
func (op Operation) String() string {
	return string(op)
}

// Actor is the authenticated identity invoking an operation. PartnerID is
// only meaningful for partner administrators; for technicians ID is the
// technician id the order assignment is matched against.
type Actor struct {
	ID        string
	Role      Role
	PartnerID string
}

// Validate checks the actor carries the identity its role needs for scoping.
func (a Actor) Validate() error {
	if a.ID == "" {
		return errs.NewValueIsRequiredError("actorId")
	}
	if err := a.Role.Validate(); err != nil {
		return err
	}
	if a.Role == RolePartnerAdmin && a.PartnerID == "" {
		return errs.NewValueIsRequiredError("actor.partnerId")
	}
	return nil
}

// permittedOperations maps each role to the operations it may invoke.
// Scoping rules are enforced separately in Authorize.
func permittedOperations() map[Role]map[Operation]bool {
	headOffice := map[Operation]bool{
		OpCreateOrder:      true,
		OpAssignPartner:    true,
		OpAssignTechnician: true,
		OpCancel:           true,
		OpRead:             true,
	}

	return map[Role]map[Operation]bool{
		RoleAdmin:    headOffice,
		RoleOperator: headOffice,
		RolePartnerAdmin: {
			OpAssignTechnician: true,
			OpRead:             true,
		},
		RoleTechnician: {
			OpConfirmAppointment: true,
			OpStartWork:          true,
			OpComplete:           true,
			OpMarkUnable:         true,
			OpRecordFeedback:     true,
			OpRead:               true,
		},
	}
}

// AccessPolicy decides which actor may invoke which operation on which order.
//
// Two checks are combined:
//   - the role must permit the operation at all
//   - partner administrators and technicians must additionally match the
//     order's current assignment
//
// A scoping mismatch is Forbidden, never NotFound: the order exists, the
// caller is simply not authorized for it.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// AuthorizeCreate checks whether the actor may create orders. Creation has no
// target order, so only the role check applies.
func (p AccessPolicy) AuthorizeCreate(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !permittedOperations()[actor.Role][OpCreateOrder] {
		return errs.NewForbiddenError(actor.Role.String(), OpCreateOrder.String())
	}
	return nil
}

// Authorize checks whether the actor may invoke op on the given order.
//
// Returns:
//   - nil when the operation is permitted
//   - a ForbiddenError when the role lacks the operation or the actor's
//     identity does not match the order's assignment
func (p AccessPolicy) Authorize(actor Actor, op Operation, o *order.Order) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if !permittedOperations()[actor.Role][op] {
		return errs.NewForbiddenError(actor.Role.String(), op.String())
	}

	switch actor.Role {
	case RolePartnerAdmin:
		if o.PartnerID() != actor.PartnerID {
			return errs.NewForbiddenError(actor.Role.String(), op.String())
		}
	case RoleTechnician:
		if o.TechnicianID() != actor.ID {
			return errs.NewForbiddenError(actor.Role.String(), op.String())
		}
	case RoleAdmin, RoleOperator:
		// Head office is not scoped.
	}

	return nil
}

// CanRead reports whether the order is visible to the actor: head office
// reads everything, partner admins their partner's orders, technicians their
// own assignments.
func (p AccessPolicy) CanRead(actor Actor, o *order.Order) bool {
	return p.Authorize(actor, OpRead, o) == nil
}
