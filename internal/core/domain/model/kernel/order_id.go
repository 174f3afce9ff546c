package kernel

import (
	"fmt"

	"fieldops/internal/pkg/errs"
)

// orderIDPrefix is the fixed prefix of every order identifier.
const orderIDPrefix = "ORD"

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly
// initialized through one of the constructor functions. It is returned when
// validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// OrderID is the identifier value object for order aggregates. Identifiers
// render as "ORD-<year>-<seq>" with a four digit, zero padded sequence number
// allocated per year, e.g. "ORD-2024-0001".
//
// OrderID is immutable. The zero value is invalid and must be constructed
// through NewOrderID or OrderIDFromString.
//
// Example usage:
//
//	id, err := kernel.NewOrderID(2024, 17)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id.String()) // "ORD-2024-0017"
type OrderID struct {
	year int
	seq  int
}

// NewOrderID creates an OrderID from a year and a per-year sequence number.
// Both values must be positive; the sequence number must not exceed four
// digits so the rendered identifier stays stable.
func NewOrderID(year, seq int) (OrderID, error) {
	if year < 1 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("year",
			fmt.Errorf("%d is not a valid order year", year))
	}
	if seq < 1 || seq > 9999 {
		return OrderID{}, errs.NewValueIsOutOfRangeError("seq", seq, 1, 9999)
	}

	return OrderID{year: year, seq: seq}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
// The accepted format is "ORD-<year>-<seq>", e.g. "ORD-2024-0001".
// This constructor is typically used when resolving identifiers received
// from external callers.
func OrderIDFromString(s string) (OrderID, error) {
	var prefix string
	var year, seq int

	n, err := fmt.Sscanf(s, "%3s-%4d-%4d", &prefix, &year, &seq)
	if err != nil || n != 3 || prefix != orderIDPrefix {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q is not a valid order identifier", s))
	}

	id, err := NewOrderID(year, seq)
	if err != nil {
		return OrderID{}, err
	}

	// Sscanf ignores unconsumed trailing input, so only accept strings that
	// render back to themselves. Anything else must fail here rather than
	// resolve to a different, existing order.
	if id.String() != s {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q is not a valid order identifier", s))
	}

	return id, nil
}

// String returns the canonical "ORD-<year>-<seq>" representation.
func (id OrderID) String() string {
	return fmt.Sprintf("%s-%04d-%04d", orderIDPrefix, id.year, id.seq)
}

// Year returns the allocation year of the identifier.
func (id OrderID) Year() int {
	return id.year
}

// Seq returns the per-year sequence number of the identifier.
func (id OrderID) Seq() int {
	return id.seq
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id == other
}

// Validate checks that the OrderID was created through a constructor.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.year == 0 || id.seq == 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
