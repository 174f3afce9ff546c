// Package errs provides standardized error types for the order-management core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two groups of errors are defined:
//
// Input errors, raised while validating values:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//
// Lifecycle and authorization errors, raised by the order state machine and
// the access policy:
//   - ObjectNotFoundError: a referenced order, partner, technician, or service
//     item does not resolve
//   - InvalidTransitionError: the requested status change is not reachable
//     from the current status
//   - TerminalStateError: the order is already in an absorbing terminal status
//   - ForbiddenError: the caller's role or identity is not authorized
//   - ConstraintViolationError: a referential mismatch between valid objects
//
// Each error type follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct with fields for error details, constructor
// functions, an Error() method, and an Unwrap() method returning the sentinel.
package errs
