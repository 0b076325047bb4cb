package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentDeliveriesQueryHandler reads an agent's deliveries from the
// database with a direct SQL query.
type GetAgentDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentDeliveriesQueryHandler creates a handler for agent workload
// queries. Requires a GORM database connection.
func NewGetAgentDeliveriesQueryHandler(db *gorm.DB) GetAgentDeliveriesQueryHandler {
	return GetAgentDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Deliveries come back newest first; an agent
// with no deliveries yields an empty slice, not an error.
func (h GetAgentDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAgentDeliveriesQuery,
) ([]GetAgentDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetAgentDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			pickup_address,
			delivery_address,
			fee,
			assigned_at,
			delivered_at,
			created_at
		FROM deliveries
		WHERE agent_id = ?
		ORDER BY created_at DESC
	`, query.AgentID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAgentDeliveriesQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Status,
			&resp.PickupAddress,
			&resp.DeliveryAddress,
			&resp.Fee,
			&resp.AssignedAt,
			&resp.DeliveredAt,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID

		deliveryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = deliveryOrderID

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
