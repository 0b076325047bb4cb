// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, payment and workflow state
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentStatus: The payment state tracked independently of the workflow
//   - LineItem: An immutable menu snapshot taken at order time
//
// Key business rules:
//   - Orders must have valid identifiers, a delivery address and at least one line item
//   - The order total is the sum of line item subtotals, fixed at creation
//   - The workflow follows PENDING -> CONFIRMED -> PREPARING -> READY -> PICKED_UP -> DELIVERED,
//     with cancellation allowed until the order is READY
//   - Delivery progress drives order status through a second, more permissive
//     transition table so that delivery updates can skip intermediate states
//   - A failed payment blocks progression but never cancels the order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
