package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDeliveryTrackingQueryHandler reads a delivery's tracking log from the
// database with a direct SQL query.
type GetDeliveryTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryTrackingQueryHandler creates a handler for tracking log
// queries. Requires a GORM database connection.
func NewGetDeliveryTrackingQueryHandler(db *gorm.DB) GetDeliveryTrackingQueryHandler {
	return GetDeliveryTrackingQueryHandler{db: db}
}

// Handle executes the query. Entries come back newest first; an unknown
// delivery id yields an empty slice, not an error.
func (h GetDeliveryTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTrackingQuery,
) ([]GetDeliveryTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetDeliveryTrackingQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			latitude,
			longitude,
			status,
			remarks,
			recorded_at
		FROM delivery_tracking
		WHERE delivery_id = ?
		ORDER BY recorded_at DESC, id DESC
	`, query.DeliveryID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveryTrackingQueryResponse
		var latitude, longitude float64

		err = rows.Scan(
			&latitude,
			&longitude,
			&resp.Status,
			&resp.Remarks,
			&resp.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		position, posErr := kernel.NewGeoPoint(latitude, longitude)
		if posErr != nil {
			return nil, posErr
		}
		resp.Position = position

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
