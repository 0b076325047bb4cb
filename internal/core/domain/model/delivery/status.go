package delivery

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// Unlike the order workflow, delivery status updates are applied
// unconditionally: field agents report what actually happened and the
// system records it, stamping timestamps and releasing the agent as a
// side effect of the reported status rather than gating the move.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a delivery awaiting an agent.
	StatusPending

	// StatusAssigned indicates an agent has been assigned.
	StatusAssigned

	// StatusPickedUp indicates the agent collected the order from the restaurant.
	StatusPickedUp

	// StatusInTransit indicates the agent is en route to the customer.
	StatusInTransit

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the delivery was cancelled. Terminal.
	StatusCancelled

	// StatusFailed indicates the delivery could not be completed. Terminal.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusAssigned:  "ASSIGNED",
		StatusPickedUp:  "PICKED_UP",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
		StatusFailed:    "FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusAssigned:  "ASSIGNED",
		StatusPickedUp:  "PICKED_UP",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
		StatusFailed:    "FAILED",
	}
}

// StatusFromString parses a status from its canonical wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, e.g. "IN_TRANSIT".
// It implements fmt.Stringer and is safe to call on any value; invalid
// values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is final. Delivered, Cancelled
// and Failed deliveries accept no further progress.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailed
}

// ReleasesAgent reports whether reaching this status frees the assigned
// agent for new work.
func (s Status) ReleasesAgent() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailed
}
