package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery or NewGetDeliveryByOrderIDQuery constructor",
)

// GetDeliveryQuery retrieves a single delivery, looked up either by its
// own id or by the order it fulfills.
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	deliveryID *kernel.UUID
	orderID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for a delivery by its id.
func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: &deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewGetDeliveryByOrderIDQuery creates a query for the delivery that
// fulfills the given order.
func NewGetDeliveryByOrderIDQuery(orderID kernel.UUID) (GetDeliveryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the delivery id filter, nil for by-order lookups.
func (q GetDeliveryQuery) DeliveryID() *kernel.UUID {
	return q.deliveryID
}

// OrderID returns the order id filter, nil for by-id lookups.
func (q GetDeliveryQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// GetDeliveryQueryResponse is the read model for a full delivery.
type GetDeliveryQueryResponse struct {
	ID                    kernel.UUID
	OrderID               kernel.UUID
	RestaurantID          kernel.UUID
	CustomerID            kernel.UUID
	AgentID               *kernel.UUID
	Status                string
	PickupAddress         string
	DeliveryAddress       string
	Fee                   decimal.Decimal
	AssignedAt            *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	EstimatedDeliveryTime *time.Time
	CancellationReason    string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
