package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates and their tracking logs.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// Returns a duplicate-delivery error if a delivery already exists
	// for the aggregate's order id; the unique key on order id is the
	// idempotent-create guard.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate,
	// appending any uncommitted tracking entries.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier,
	// including its tracking log.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery for an order. Returns an
	// object-not-found error if no delivery exists for the order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// ExistsByOrderID reports whether a delivery already exists for the order.
	ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error)

	// GetAllActive retrieves all deliveries in a non-terminal status,
	// oldest first.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)
}
