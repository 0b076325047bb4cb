package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from placement through payment and fulfillment to a
// terminal state.
//
// Order follows these invariants:
//   - Must have valid order, customer and restaurant identifiers
//   - Must have a non-empty delivery address and at least one line item
//   - Total amount equals the sum of line item subtotals at creation time
//   - Status transitions follow the workflow defined by Status
//   - Orders are never deleted, only marked Delivered or Cancelled
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// restaurantID identifies the restaurant fulfilling the order
	restaurantID kernel.UUID

	// status represents the current state in the order workflow
	status Status

	// paymentStatus tracks the payment independently of the workflow
	paymentStatus PaymentStatus

	// totalAmount is the sum of line item subtotals, fixed at creation
	totalAmount decimal.Decimal

	// deliveryAddress is the customer's drop-off address
	deliveryAddress string

	// specialInstructions holds optional free-form delivery notes
	specialInstructions string

	// items are immutable menu snapshots taken at order time
	items []LineItem

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in
// StatusPending with PaymentPending, and its total amount is computed as
// the sum of line item subtotals.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: identifier of the ordering customer (must be a valid UUID)
//   - restaurantID: identifier of the restaurant (must be a valid UUID)
//   - deliveryAddress: drop-off address (must be non-empty)
//   - specialInstructions: optional delivery notes
//   - items: line item snapshots (at least one, each properly constructed)
//   - now: creation timestamp, stamped as both createdAt and updatedAt
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	specialInstructions string,
	items []LineItem,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:              StatusPending,
		paymentStatus:       PaymentPending,
		specialInstructions: specialInstructions,
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range order.items {
		total = total.Add(item.Subtotal())
	}
	order.totalAmount = total

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts the stored status, payment status, total amount and timestamps
// as-is, validating only structural invariants.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	status Status,
	paymentStatus PaymentStatus,
	totalAmount decimal.Decimal,
	deliveryAddress string,
	specialInstructions string,
	items []LineItem,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		totalAmount:         totalAmount,
		specialInstructions: specialInstructions,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
		order.setStatus(status),
		order.setPaymentStatus(paymentStatus),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the fulfilling restaurant.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Status returns the current workflow status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TotalAmount returns the order total, fixed at creation time.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// DeliveryAddress returns the customer's drop-off address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// SpecialInstructions returns the optional delivery notes.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// Items returns a copy of the order's line items in their original order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order to target, enforcing the direct transition
// table. On success the updated-at timestamp is stamped with now.
//
// Returns:
//   - nil on a valid transition
//   - an invalid-transition error if the workflow forbids the move,
//     leaving the order unchanged
func (o *Order) TransitionTo(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// ApplyDeliveryDrivenStatus moves the order to target under the looser
// delivery-driven transition table. It reports whether the status was
// applied; a forbidden move is not an error here because delivery events
// are replayed at-least-once and a stale or duplicate event is expected.
func (o *Order) ApplyDeliveryDrivenStatus(target Status, now time.Time) bool {
	if err := target.Validate(); err != nil {
		return false
	}

	if !o.status.CanTransitionOnDeliveryUpdate(target) {
		return false
	}

	o.status = target
	o.updatedAt = now
	return true
}

// Cancel forces the order into StatusCancelled from any non-terminal state.
//
// Returns:
//   - nil on success
//   - an invalid-state error if the order is already Delivered or Cancelled
func (o *Order) Cancel(now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String(), "cancel")
	}

	o.status = StatusCancelled
	o.updatedAt = now
	return nil
}

// MarkPaymentCompleted records a successful payment: payment status moves
// to PaymentCompleted and the order is confirmed. The direct transition
// check is bypassed since Pending to Confirmed is always legal and a
// replayed success on an already confirmed order is harmless.
func (o *Order) MarkPaymentCompleted(now time.Time) {
	o.paymentStatus = PaymentCompleted
	o.status = StatusConfirmed
	o.updatedAt = now
}

// MarkPaymentFailed records a failed payment. The workflow status is left
// unchanged: a failed payment blocks progression but does not cancel the
// order.
func (o *Order) MarkPaymentFailed(now time.Time) {
	o.paymentStatus = PaymentFailed
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}
