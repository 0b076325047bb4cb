// Package delivery provides domain entities and business logic for order
// fulfillment. It implements the Delivery aggregate root with agent
// assignment and an append-only tracking log.
//
// The package includes:
//   - Delivery: The aggregate root that manages assignment, status and timestamps
//   - Status: The reported fulfillment state
//   - TrackingEntry: One immutable record in the delivery audit trail
//
// Key business rules:
//   - At most one delivery exists per order
//   - An agent can only be assigned while the delivery is PENDING
//   - Status updates from the field are applied unconditionally and drive
//     side effects (timestamps, agent release, cancellation reason)
//   - The tracking log is append-only and never edited
package delivery
