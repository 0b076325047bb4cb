package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads a single delivery from the database with
// a direct SQL query.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery
// queries. Requires a GORM database connection.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query. An unknown id yields an object-not-found
// error.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	filter := "id = ?"
	filterID := query.DeliveryID()
	paramName := "deliveryID"
	if filterID == nil {
		filter = "order_id = ?"
		filterID = query.OrderID()
		paramName = "orderID"
	}

	var resp GetDeliveryQueryResponse
	var id, orderID, restaurantID, customerID uuid.UUID
	var agentID *uuid.UUID
	var cancellationReason sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			restaurant_id,
			customer_id,
			agent_id,
			status,
			pickup_address,
			delivery_address,
			fee,
			assigned_at,
			picked_up_at,
			delivered_at,
			estimated_delivery_time,
			cancellation_reason,
			created_at,
			updated_at
		FROM deliveries
		WHERE `+filter, filterID.String()).Row()

	err := row.Scan(
		&id,
		&orderID,
		&restaurantID,
		&customerID,
		&agentID,
		&resp.Status,
		&resp.PickupAddress,
		&resp.DeliveryAddress,
		&resp.Fee,
		&resp.AssignedAt,
		&resp.PickedUpAt,
		&resp.DeliveredAt,
		&resp.EstimatedDeliveryTime,
		&cancellationReason,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundError(paramName, *filterID)
	}
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if agentID != nil {
		assigned, idErr := kernel.UUIDFromBytes(agentID[:])
		if idErr != nil {
			return GetDeliveryQueryResponse{}, idErr
		}
		resp.AgentID = &assigned
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	resp.CancellationReason = cancellationReason.String

	return resp, nil
}
