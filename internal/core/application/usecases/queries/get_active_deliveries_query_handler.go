package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads in-flight deliveries from the
// database with a direct SQL query.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery
// queries. Requires a GORM database connection.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Deliveries in DELIVERED, CANCELLED or FAILED
// status are excluded; results come back oldest first so the longest
// waiting deliveries surface at the top.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			agent_id,
			status,
			delivery_address,
			fee,
			estimated_delivery_time,
			created_at
		FROM deliveries
		WHERE status NOT IN ('DELIVERED', 'CANCELLED', 'FAILED')
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, orderID uuid.UUID
		var agentID *uuid.UUID
		var fee decimal.Decimal
		var eta *time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&agentID,
			&resp.Status,
			&resp.DeliveryAddress,
			&fee,
			&eta,
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

		if agentID != nil {
			deliveryAgentID, idErr := kernel.UUIDFromBytes(agentID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AgentID = &deliveryAgentID
		}

		resp.Fee = fee
		resp.EstimatedDeliveryTime = eta
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
