package delivery

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery represents the fulfillment of one order. It is the aggregate
// root that manages agent assignment, status progression and the
// append-only tracking log.
//
// Delivery follows these invariants:
//   - Must have valid delivery, order, restaurant and customer identifiers
//   - Must have non-empty pickup and drop-off addresses
//   - At most one delivery exists per order; the uniqueness guard lives in
//     the repository, keyed by order id
//   - Agent assignment requires StatusPending
//   - The tracking log is append-only
//   - Can only be created through NewDelivery or RestoreDelivery
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// orderID is the fulfilled order; unique across all deliveries
	orderID kernel.UUID

	restaurantID kernel.UUID
	customerID   kernel.UUID

	// agentID is the assigned agent's ID (nil while unassigned)
	agentID *kernel.UUID

	pickupAddress   string
	deliveryAddress string

	// pickupPosition and deliveryPosition may be nil when the upstream
	// order carried no coordinates
	pickupPosition   *kernel.GeoPoint
	deliveryPosition *kernel.GeoPoint

	// status is the reported fulfillment state
	status Status

	assignedAt            *time.Time
	pickedUpAt            *time.Time
	deliveredAt           *time.Time
	estimatedDeliveryTime *time.Time

	instructions       string
	fee                decimal.Decimal
	cancellationReason string

	// tracking is the full audit trail; restoredTracking marks how many
	// leading entries came from persistence and are already stored
	tracking         []TrackingEntry
	restoredTracking int

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the delivery was created via a factory method
	isConstructed bool
}

// NewDelivery creates a new Delivery in StatusPending.
//
// Parameters:
//   - id: unique identifier for the delivery (must be a valid UUID)
//   - orderID: the fulfilled order (must be a valid UUID)
//   - restaurantID, customerID: parties to the delivery (must be valid UUIDs)
//   - pickupAddress, deliveryAddress: must be non-empty
//   - pickupPosition, deliveryPosition: optional coordinates, nil when unknown
//   - instructions: optional delivery notes
//   - fee: the delivery fee
//   - now: creation timestamp
//
// Returns:
//   - *Delivery: the created delivery if all validations pass
//   - error: validation error if any parameter is invalid
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	pickupPosition *kernel.GeoPoint,
	deliveryPosition *kernel.GeoPoint,
	instructions string,
	fee decimal.Decimal,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        StatusPending,
		instructions:  instructions,
		fee:           fee,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setRestaurantID(restaurantID),
		d.setCustomerID(customerID),
		d.setPickupAddress(pickupAddress),
		d.setDeliveryAddress(deliveryAddress),
		d.setPickupPosition(pickupPosition),
		d.setDeliveryPosition(deliveryPosition),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, trusting the
// stored status, timestamps and tracking log. Entries passed here are
// considered already persisted and excluded from UncommittedTracking.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	agentID *kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	pickupPosition *kernel.GeoPoint,
	deliveryPosition *kernel.GeoPoint,
	status Status,
	assignedAt *time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	estimatedDeliveryTime *time.Time,
	instructions string,
	fee decimal.Decimal,
	cancellationReason string,
	tracking []TrackingEntry,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		assignedAt:            assignedAt,
		pickedUpAt:            pickedUpAt,
		deliveredAt:           deliveredAt,
		estimatedDeliveryTime: estimatedDeliveryTime,
		instructions:          instructions,
		fee:                   fee,
		cancellationReason:    cancellationReason,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setRestaurantID(restaurantID),
		d.setCustomerID(customerID),
		d.setPickupAddress(pickupAddress),
		d.setDeliveryAddress(deliveryAddress),
		d.setPickupPosition(pickupPosition),
		d.setDeliveryPosition(deliveryPosition),
		d.setStatus(status),
		d.setAgentID(agentID),
	); err != nil {
		return nil, err
	}

	d.tracking = make([]TrackingEntry, len(tracking))
	copy(d.tracking, tracking)
	d.restoredTracking = len(tracking)

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through
// a factory method.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the fulfilled order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// RestaurantID returns the identifier of the pickup restaurant.
func (d *Delivery) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// CustomerID returns the identifier of the receiving customer.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// AgentID returns the assigned agent's ID, or nil while unassigned.
func (d *Delivery) AgentID() *kernel.UUID {
	return d.agentID
}

// PickupAddress returns the restaurant pickup address.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// DeliveryAddress returns the customer drop-off address.
func (d *Delivery) DeliveryAddress() string {
	return d.deliveryAddress
}

// PickupPosition returns the pickup coordinates, or nil when unknown.
func (d *Delivery) PickupPosition() *kernel.GeoPoint {
	return d.pickupPosition
}

// DeliveryPosition returns the drop-off coordinates, or nil when unknown.
func (d *Delivery) DeliveryPosition() *kernel.GeoPoint {
	return d.deliveryPosition
}

// Status returns the current fulfillment status.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignedAt returns when an agent was assigned, or nil.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// PickedUpAt returns when the order was collected, or nil.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// EstimatedDeliveryTime returns the promised delivery time, or nil while
// unassigned.
func (d *Delivery) EstimatedDeliveryTime() *time.Time {
	return d.estimatedDeliveryTime
}

// Instructions returns the optional delivery notes.
func (d *Delivery) Instructions() string {
	return d.instructions
}

// Fee returns the delivery fee.
func (d *Delivery) Fee() decimal.Decimal {
	return d.fee
}

// CancellationReason returns the recorded reason when the delivery was
// cancelled or failed, empty otherwise.
func (d *Delivery) CancellationReason() string {
	return d.cancellationReason
}

// Tracking returns a copy of the full audit trail in append order.
func (d *Delivery) Tracking() []TrackingEntry {
	tracking := make([]TrackingEntry, len(d.tracking))
	copy(tracking, d.tracking)
	return tracking
}

// UncommittedTracking returns the entries appended since the delivery was
// loaded. The persistence layer stores exactly these on save.
func (d *Delivery) UncommittedTracking() []TrackingEntry {
	uncommitted := make([]TrackingEntry, len(d.tracking)-d.restoredTracking)
	copy(uncommitted, d.tracking[d.restoredTracking:])
	return uncommitted
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the delivery was last modified.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// Assign attaches an agent to a pending delivery. The delivery moves to
// StatusAssigned, assignedAt is stamped with now and the estimated
// delivery time is recorded.
//
// Returns:
//   - nil on success
//   - an invalid-state error if the delivery is not StatusPending
//   - a validation error if the agent ID is invalid
func (d *Delivery) Assign(agentID kernel.UUID, now time.Time, estimatedDeliveryTime time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if d.status != StatusPending {
		return errs.NewInvalidStateError("delivery", d.status.String(), "assign")
	}

	d.agentID = &agentID
	d.status = StatusAssigned
	d.assignedAt = &now
	d.estimatedDeliveryTime = &estimatedDeliveryTime
	d.updatedAt = now
	return nil
}

// ApplyStatus records a reported fulfillment status. The move is applied
// unconditionally as long as the status is valid; side effects depend on
// the new status:
//   - StatusPickedUp stamps pickedUpAt
//   - StatusDelivered stamps deliveredAt
//   - StatusCancelled and StatusFailed record remarks as the cancellation reason
//
// Releasing the assigned agent is the caller's responsibility; use
// Status.ReleasesAgent to decide.
func (d *Delivery) ApplyStatus(newStatus Status, remarks string, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	d.status = newStatus
	d.updatedAt = now

	switch newStatus {
	case StatusPickedUp:
		d.pickedUpAt = &now
	case StatusDelivered:
		d.deliveredAt = &now
	case StatusCancelled, StatusFailed:
		d.cancellationReason = remarks
	case StatusPending, StatusAssigned, StatusInTransit, StatusUnknown:
	}

	return nil
}

// AppendTracking adds an entry to the audit trail carrying the delivery's
// current status.
func (d *Delivery) AppendTracking(position kernel.GeoPoint, remarks string, now time.Time) error {
	entry, err := NewTrackingEntry(position, d.status, remarks, now)
	if err != nil {
		return err
	}

	d.tracking = append(d.tracking, entry)
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	d.restaurantID = restaurantID
	return nil
}

func (d *Delivery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setAgentID(agentID *kernel.UUID) error {
	if agentID == nil {
		return nil
	}
	if err := agentID.Validate(); err != nil {
		return err
	}
	d.agentID = agentID
	return nil
}

func (d *Delivery) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	d.pickupAddress = pickupAddress
	return nil
}

func (d *Delivery) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	d.deliveryAddress = deliveryAddress
	return nil
}

func (d *Delivery) setPickupPosition(position *kernel.GeoPoint) error {
	if position == nil {
		return nil
	}
	if err := position.Validate(); err != nil {
		return err
	}
	d.pickupPosition = position
	return nil
}

func (d *Delivery) setDeliveryPosition(position *kernel.GeoPoint) error {
	if position == nil {
		return nil
	}
	if err := position.Validate(); err != nil {
		return err
	}
	d.deliveryPosition = position
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
