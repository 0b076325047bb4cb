package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> PickedUp ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal states.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first placed.
	// Orders in this status are waiting for payment confirmation.
	StatusPending

	// StatusConfirmed indicates payment succeeded and the restaurant
	// has accepted the order.
	StatusConfirmed

	// StatusPreparing indicates the restaurant is preparing the order.
	StatusPreparing

	// StatusReady indicates the order is ready for pickup by a delivery agent.
	StatusReady

	// StatusPickedUp indicates a delivery agent has collected the order.
	StatusPickedUp

	// StatusDelivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled.
	// This is a final state with no further transitions allowed.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// The strings match the values carried in event payloads and persisted rows.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusPending:   "PENDING",
		StatusConfirmed: "CONFIRMED",
		StatusPreparing: "PREPARING",
		StatusReady:     "READY",
		StatusPickedUp:  "PICKED_UP",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "PENDING",
		StatusConfirmed: "CONFIRMED",
		StatusPreparing: "PREPARING",
		StatusReady:     "READY",
		StatusPickedUp:  "PICKED_UP",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// getAllowedTransitions returns the transition table enforced on direct
// status changes. Terminal states have no outgoing transitions.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusPickedUp},
		StatusPickedUp:  {StatusDelivered},
	}
}

// getDeliveryDrivenTransitions returns the transition table applied when
// delivery progress drives the order status. It is deliberately more
// permissive than the direct table: delivery updates may skip intermediate
// restaurant states (e.g. Confirmed straight to Ready when an agent is
// assigned before the kitchen reported Preparing).
func getDeliveryDrivenTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusPreparing, StatusReady, StatusPickedUp, StatusCancelled},
		StatusPreparing: {StatusReady, StatusPickedUp, StatusCancelled},
		StatusReady:     {StatusPickedUp, StatusDelivered, StatusCancelled},
		StatusPickedUp:  {StatusDelivered, StatusCancelled},
	}
}

// StatusFromString parses a status from its canonical wire representation.
//
// Returns:
//   - the matching Status for a known string such as "PENDING" or "PICKED_UP"
//   - an error if the string does not name a valid status
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, events) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, e.g. "PENDING".
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones, which render
// as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is final.
// Delivered and Cancelled orders accept no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether a direct transition from the current
// status to target is allowed by the order workflow.
func (s Status) CanTransitionTo(target Status) bool {
	return containsStatus(getAllowedTransitions()[s], target)
}

// CanTransitionOnDeliveryUpdate reports whether a transition driven by
// delivery progress is allowed. See getDeliveryDrivenTransitions for why
// this table is looser than the direct one.
func (s Status) CanTransitionOnDeliveryUpdate(target Status) bool {
	return containsStatus(getDeliveryDrivenTransitions()[s], target)
}

// TransitionTo validates and performs a direct transition to target.
//
// Returns:
//   - (target, nil) if the transition is allowed
//   - (0, error) with an invalid-transition error otherwise
//
// This method is used by Order.TransitionTo to enforce the workflow.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}

	return target, nil
}

func containsStatus(statuses []Status, target Status) bool {
	for _, s := range statuses {
		if s == target {
			return true
		}
	}
	return false
}
