package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status represents the lifecycle state of a bakery order.
//
// The usual flow is:
//
//	New ──> Confirmed ──> Ready ──> Delivered
//	 │          │
//	 └──────────┴──> Problem / Cancelled
//
// Status deliberately does not validate transition legality: ChangeState on
// the order accepts any target status, and callers are responsible for
// choosing contextually valid transitions. Tightening this would change
// observable behavior for existing data flows.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of a freshly placed order.
	New

	// Confirmed indicates the bakery accepted the order and is preparing it.
	Confirmed

	// Ready indicates the order is prepared and waiting for pickup.
	Ready

	// Delivered indicates the order was handed over to the customer.
	// This is the terminal state of the happy path.
	Delivered

	// Problem indicates the order cannot be fulfilled as agreed and
	// requires attention.
	Problem

	// Cancelled indicates the order was called off before delivery.
	Cancelled
)

// getStatusStrings returns a map of Status values to their display names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Confirmed: "Confirmed",
		Ready:     "Ready",
		Delivered: "Delivered",
		Problem:   "Problem",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Unknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Confirmed: "Confirmed",
		Ready:     "Ready",
		Delivered: "Delivered",
		Problem:   "Problem",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a display name like "Confirmed" into a Status.
// Returns an error for unknown names and for "Unknown" itself.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, e.g. "Confirmed".
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// HistoryMessage returns the audit-log message recorded when an order enters
// this status.
func (s Status) HistoryMessage() string {
	switch s {
	case New:
		return "Order placed"
	case Confirmed:
		return "Order confirmed"
	case Ready:
		return "Order ready for pickup"
	case Delivered:
		return "Order delivered"
	case Problem:
		return "Order has a problem"
	case Cancelled:
		return "Order cancelled"
	case Unknown:
		fallthrough
	default:
		return "Order updated"
	}
}
