// Package order provides the domain model for field-service orders: the
// Order aggregate root, the Status state machine, and the Photos and
// Feedback value objects.
//
// Key business rules:
//   - Orders are created in Receipt and move through a fixed workflow:
//     partner transfer, technician assignment, appointment, work, and a
//     terminal outcome (Completed, Unable, or Cancelled)
//   - A technician can only be assigned after the order was transferred to
//     that technician's partner
//   - Completion requires before and after photos; marking an order unable
//     requires an issue note plus photographic evidence
//   - Terminal statuses are absorbing
//   - All mutations are validate-then-apply: a rejected operation never
//     leaves a partial write behind
//
// The package follows Domain-Driven Design principles: rich behavior on the
// aggregate, private fields, and factory constructors that make invalid
// instances unrepresentable.
package order
