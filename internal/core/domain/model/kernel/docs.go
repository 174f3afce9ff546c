// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides OrderID, the identifier value object for
// order aggregates. Like all value objects in the domain, the zero value is
// invalid and instances must be created through the provided constructors.
package kernel
