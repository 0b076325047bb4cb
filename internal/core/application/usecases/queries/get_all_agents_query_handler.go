package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllAgentsQueryHandler reads the agent roster from the database with a
// direct SQL query.
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent roster queries.
// Requires a GORM database connection.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for consistent
// output.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]GetAllAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAllAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_type,
			status,
			latitude,
			longitude,
			total_deliveries,
			rating,
			last_active_at
		FROM agents
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllAgentsQueryResponse
		var id uuid.UUID
		var latitude, longitude *float64

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.VehicleType,
			&resp.Status,
			&latitude,
			&longitude,
			&resp.TotalDeliveries,
			&resp.Rating,
			&resp.LastActiveAt,
		)
		if err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = agentID

		if latitude != nil && longitude != nil {
			position, posErr := kernel.NewGeoPoint(*latitude, *longitude)
			if posErr != nil {
				return nil, posErr
			}
			resp.Position = &position
		}

		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
