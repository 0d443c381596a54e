package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// Orders move through the physical workstations of the laundry along a
// directed status graph; which edges exist for a given tenant is decided
// by the status graph service, not by Status itself.
//
// Canonical stage chain (optional stages in brackets):
//
//	intake ──> preparation ──> processing ──> [assembly] ──> [qa] ──> [packing]
//	    ──> ready ──> out_for_delivery ──> delivered
//
// Any non-terminal status may also be cancelled.
//
// Status is a value object providing validation and the snake_case string
// representations used for persistence and the API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Intake is the initial status: the order has been received at the counter.
	Intake

	// Preparation covers sorting, tagging, and stain inspection.
	Preparation

	// Processing covers washing, dry cleaning, and drying.
	Processing

	// Assembly is the optional stage where processed pieces are regrouped per order.
	Assembly

	// QA is the optional quality-assurance inspection stage.
	QA

	// Packing is the optional stage where the order is wrapped and racked.
	Packing

	// Ready means the order is racked and awaiting pickup or dispatch.
	Ready

	// OutForDelivery means a courier has taken the order for delivery.
	OutForDelivery

	// Delivered means the customer has received the order.
	// Terminal for the transition engine: workstations cannot move a
	// delivered order anywhere.
	Delivered

	// Cancelled is a terminal status with no outgoing transitions.
	Cancelled

	// Closed is a terminal status with no outgoing transitions.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Intake:         "intake",
		Preparation:    "preparation",
		Processing:     "processing",
		Assembly:       "assembly",
		QA:             "qa",
		Packing:        "packing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Closed:         "closed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Intake:         "intake",
		Preparation:    "preparation",
		Processing:     "processing",
		Assembly:       "assembly",
		QA:             "qa",
		Packing:        "packing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Closed:         "closed",
	}
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, e.g. "out_for_delivery".
// Returns "unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a snake_case status name into a Status.
// Returns an error for unknown names and for "unknown" itself.
//
// Example:
//
//	status, err := order.StatusFromString("out_for_delivery")
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// IsTerminal reports whether the status permits no further transitions.
//
// Delivered, Cancelled, and Closed are terminal: the transition engine
// rejects every request originating from them with a TerminalStateError.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Closed
}
