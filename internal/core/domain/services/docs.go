// Package services contains stateless domain services that coordinate rules
// spanning multiple domain objects.
//
// The package provides AccessPolicy, the role-scoped authorization service
// for order mutations and reads. The policy is enforced at the mutation site,
// not in the UI: every command and query handler consults it before touching
// an order.
package services
