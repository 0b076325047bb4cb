// Package deliveryrepo implements delivery persistence with GORM. The
// unique index on order_id is the idempotent-create guard: a replayed
// order confirmation hits the constraint instead of spawning a second
// delivery.
package deliveryrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Positions are flattened to nullable coordinate pairs so a
// delivery without geodata stores NULLs rather than a zero point.
type DeliveryDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	RestaurantID          uuid.UUID  `gorm:"type:uuid"`
	CustomerID            uuid.UUID  `gorm:"type:uuid"`
	AgentID               *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress         string
	DeliveryAddress       string
	PickupLatitude        *float64
	PickupLongitude       *float64
	DeliveryLatitude      *float64
	DeliveryLongitude     *float64
	Status                string `gorm:"type:varchar(16);index"`
	AssignedAt            *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	EstimatedDeliveryTime *time.Time
	Instructions          string
	Fee                   decimal.Decimal `gorm:"type:numeric(12,2)"`
	CancellationReason    string
	Tracking              []TrackingEntryDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// TrackingEntryDTO represents one row of a delivery's tracking log.
type TrackingEntryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	DeliveryID uuid.UUID `gorm:"type:uuid;index"`
	Latitude   float64
	Longitude  float64
	Status     string `gorm:"type:varchar(16)"`
	Remarks    string
	RecordedAt time.Time
}

// TableName specifies the database table name for tracking entries.
func (TrackingEntryDTO) TableName() string {
	return "delivery_tracking"
}

// fromDomain converts a delivery aggregate to its database representation.
// Tracking entries are handled separately in Update because committed rows
// must never be rewritten.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderID:               aggregate.OrderID().Bytes(),
		RestaurantID:          aggregate.RestaurantID().Bytes(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		PickupAddress:         aggregate.PickupAddress(),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		Status:                aggregate.Status().String(),
		AssignedAt:            aggregate.AssignedAt(),
		PickedUpAt:            aggregate.PickedUpAt(),
		DeliveredAt:           aggregate.DeliveredAt(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		Instructions:          aggregate.Instructions(),
		Fee:                   aggregate.Fee(),
		CancellationReason:    aggregate.CancellationReason(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}

	if agentID := aggregate.AgentID(); agentID != nil {
		id := agentID.Bytes()
		dto.AgentID = &id
	}
	if position := aggregate.PickupPosition(); position != nil {
		lat, long := position.Latitude(), position.Longitude()
		dto.PickupLatitude, dto.PickupLongitude = &lat, &long
	}
	if position := aggregate.DeliveryPosition(); position != nil {
		lat, long := position.Latitude(), position.Longitude()
		dto.DeliveryLatitude, dto.DeliveryLongitude = &lat, &long
	}

	return dto
}

// trackingFromDomain converts uncommitted tracking entries to rows for the
// given delivery.
func trackingFromDomain(deliveryID uuid.UUID, entries []delivery.TrackingEntry) []TrackingEntryDTO {
	dtos := make([]TrackingEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, TrackingEntryDTO{
			DeliveryID: deliveryID,
			Latitude:   entry.Position().Latitude(),
			Longitude:  entry.Position().Longitude(),
			Status:     entry.Status().String(),
			Remarks:    entry.Remarks(),
			RecordedAt: entry.Timestamp(),
		})
	}

	return dtos
}

// toDomain reconstructs a delivery aggregate from its database
// representation using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		restored, agentErr := kernel.UUIDFromBytes(dto.AgentID[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &restored
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickupPosition, err := geoPointFrom(dto.PickupLatitude, dto.PickupLongitude)
	if err != nil {
		return nil, err
	}
	deliveryPosition, err := geoPointFrom(dto.DeliveryLatitude, dto.DeliveryLongitude)
	if err != nil {
		return nil, err
	}

	tracking := make([]delivery.TrackingEntry, 0, len(dto.Tracking))
	for _, entryDTO := range dto.Tracking {
		entry, entryErr := trackingEntryToDomain(entryDTO)
		if entryErr != nil {
			return nil, entryErr
		}
		tracking = append(tracking, entry)
	}

	return delivery.RestoreDelivery(
		id, orderID, restaurantID, customerID, agentID,
		dto.PickupAddress, dto.DeliveryAddress,
		pickupPosition, deliveryPosition,
		status,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt, dto.EstimatedDeliveryTime,
		dto.Instructions, dto.Fee, dto.CancellationReason,
		tracking,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func trackingEntryToDomain(dto TrackingEntryDTO) (delivery.TrackingEntry, error) {
	position, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return delivery.TrackingEntry{}, err
	}
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return delivery.TrackingEntry{}, err
	}

	return delivery.NewTrackingEntry(position, status, dto.Remarks, dto.RecordedAt)
}

func geoPointFrom(latitude, longitude *float64) (*kernel.GeoPoint, error) {
	if latitude == nil || longitude == nil {
		return nil, nil
	}

	position, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}

	return &position, nil
}
