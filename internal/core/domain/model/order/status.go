package order

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the field-service workflow.
//
// State transitions:
//
//	Receipt ──> Transferred ──> Assigned ──┬──> Appointed ──┐
//	   │             │             │       │        │       │
//	   │             │             │       └────────┼───────┴──> Working ──┬──> Completed
//	   │             │             │                │                      └──> Unable
//	   └─────────────┴─────────────┴────────────────┴──> Cancelled
//
// Completed, Unable, and Cancelled are terminal and absorbing: once reached,
// every further transition fails with a TerminalStateError regardless of input.
//
// Visiting and PhotoUploaded are declared for forward compatibility with the
// mobile workflow but are not reachable through any transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Receipt is the initial status when an order is first received by head office.
	Receipt

	// Transferred indicates the order has been handed to a partner company.
	Transferred

	// Assigned indicates a field technician has been assigned to the order.
	Assigned

	// Appointed indicates an appointment with the customer has been confirmed.
	Appointed

	// Visiting is reserved: declared in the workflow but not transitioned into.
	Visiting

	// Working indicates the technician has started on-site work.
	Working

	// PhotoUploaded is reserved: declared in the workflow but not transitioned into.
	PhotoUploaded

	// Completed indicates the work finished successfully. Terminal.
	Completed

	// Unable indicates the work could not be carried out. Terminal.
	Unable

	// Cancelled indicates the order was withdrawn before work started. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Receipt:       "Receipt",
		Transferred:   "Transferred",
		Assigned:      "Assigned",
		Appointed:     "Appointed",
		Visiting:      "Visiting",
		Working:       "Working",
		PhotoUploaded: "PhotoUploaded",
		Completed:     "Completed",
		Unable:        "Unable",
		Cancelled:     "Cancelled",
	}
}

// StatusFromString parses the human-readable status name produced by String.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the declared workflow states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is absorbing: no transition may leave it.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Unable || s == Cancelled
}

// guardTransition enforces the shared transition preconditions: a terminal
// source fails with a TerminalStateError before anything else is examined,
// and a source outside the allowed set fails with an InvalidTransitionError.
func (s Status) guardTransition(to Status, from ...Status) (Status, error) {
	if s.IsTerminal() {
		return Unknown, errs.NewTerminalStateError(s.String())
	}
	for _, f := range from {
		if s == f {
			return to, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError(s.String(), to.String())
}

// ValidateAssignPartner checks if the order can be transferred to a partner
// without performing the transition. Only Receipt orders can be transferred.
func (s Status) ValidateAssignPartner() error {
	_, err := s.guardTransition(Transferred, Receipt)
	return err
}

// AssignPartner transitions the status to Transferred.
//
// Valid transitions:
//   - Receipt -> Transferred
func (s Status) AssignPartner() (Status, error) {
	return s.guardTransition(Transferred, Receipt)
}

// ValidateAssignTechnician checks if a technician can be assigned without
// performing the transition. Only Transferred orders accept a technician;
// in particular an order still in Receipt has no partner yet.
func (s Status) ValidateAssignTechnician() error {
	_, err := s.guardTransition(Assigned, Transferred)
	return err
}

// AssignTechnician transitions the status to Assigned.
//
// Valid transitions:
//   - Transferred -> Assigned
func (s Status) AssignTechnician() (Status, error) {
	return s.guardTransition(Assigned, Transferred)
}

// ConfirmAppointment transitions the status to Appointed.
//
// Valid transitions:
//   - Assigned -> Appointed
func (s Status) ConfirmAppointment() (Status, error) {
	return s.guardTransition(Appointed, Assigned)
}

// StartWork transitions the status to Working. An appointment is not
// mandatory: technicians may start directly from Assigned.
//
// Valid transitions:
//   - Assigned -> Working
//   - Appointed -> Working
func (s Status) StartWork() (Status, error) {
	return s.guardTransition(Working, Assigned, Appointed)
}

// Complete transitions the status to Completed, the successful terminal state.
//
// Valid transitions:
//   - Working -> Completed
func (s Status) Complete() (Status, error) {
	return s.guardTransition(Completed, Working)
}

// MarkUnable transitions the status to Unable, the unsuccessful terminal state.
//
// Valid transitions:
//   - Working -> Unable
func (s Status) MarkUnable() (Status, error) {
	return s.guardTransition(Unable, Working)
}

// Cancel transitions the status to Cancelled. Orders can be withdrawn at any
// point before work starts.
//
// Valid transitions:
//   - Receipt -> Cancelled
//   - Transferred -> Cancelled
//   - Assigned -> Cancelled
//   - Appointed -> Cancelled
func (s Status) Cancel() (Status, error) {
	return s.guardTransition(Cancelled, Receipt, Transferred, Assigned, Appointed)
}
