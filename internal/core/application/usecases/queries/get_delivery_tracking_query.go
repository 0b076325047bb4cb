package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDeliveryTrackingQueryIsNotConstructed = errors.New(
	"GetDeliveryTrackingQuery must be created via NewGetDeliveryTrackingQuery constructor",
)

// GetDeliveryTrackingQuery retrieves the tracking history of one delivery,
// oldest entry first.
type GetDeliveryTrackingQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryTrackingQuery creates a query for a delivery's tracking log.
func NewGetDeliveryTrackingQuery(deliveryID kernel.UUID) (GetDeliveryTrackingQuery, error) {
	q := GetDeliveryTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDeliveryID(deliveryID); err != nil {
		return GetDeliveryTrackingQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTrackingQueryIsNotConstructed)
}

// DeliveryID returns the delivery whose history is requested.
func (q GetDeliveryTrackingQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q *GetDeliveryTrackingQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	q.deliveryID = deliveryID
	return nil
}

// GetDeliveryTrackingQueryResponse is one tracking log entry.
type GetDeliveryTrackingQueryResponse struct {
	Position  kernel.GeoPoint
	Status    string
	Remarks   string
	Timestamp time.Time
}
