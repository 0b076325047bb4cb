package agent

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the availability of a delivery agent.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable indicates the agent can accept a delivery.
	StatusAvailable

	// StatusBusy indicates the agent is working an active delivery.
	// At most one non-terminal delivery references a busy agent.
	StatusBusy

	// StatusOffline indicates the agent is not working.
	StatusOffline

	// StatusOnBreak indicates the agent is temporarily unavailable.
	StatusOnBreak
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusAvailable: "AVAILABLE",
		StatusBusy:      "BUSY",
		StatusOffline:   "OFFLINE",
		StatusOnBreak:   "ON_BREAK",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable: "AVAILABLE",
		StatusBusy:      "BUSY",
		StatusOffline:   "OFFLINE",
		StatusOnBreak:   "ON_BREAK",
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
		fmt.Errorf("%q is not a valid agent status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, e.g. "AVAILABLE".
// It implements fmt.Stringer and is safe to call on any value; invalid
// values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
