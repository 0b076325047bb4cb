package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Restaurant is the synchronous view of a restaurant exposed by the
// restaurant service.
type Restaurant struct {
	ID     kernel.UUID
	Name   string
	Active bool
}

// MenuItem is the synchronous view of a menu item. Orders snapshot the
// name and price at placement time.
type MenuItem struct {
	ID        kernel.UUID
	Name      string
	Price     decimal.Decimal
	Available bool
}

// RestaurantDirectory is the synchronous collaborator interface to the
// restaurant service, consulted when placing an order. Failures surface
// as upstream-unavailable errors.
type RestaurantDirectory interface {
	// GetRestaurant fetches a restaurant by id. Returns an
	// object-not-found error for unknown ids.
	GetRestaurant(ctx context.Context, id kernel.UUID) (Restaurant, error)

	// GetMenuItem fetches a menu item by id. Returns an
	// object-not-found error for unknown ids.
	GetMenuItem(ctx context.Context, id kernel.UUID) (MenuItem, error)
}

// UserDirectory is the synchronous collaborator interface to the user
// service, consulted to verify a customer exists when placing an order.
type UserDirectory interface {
	// UserExists reports whether the user id is a known account.
	UserExists(ctx context.Context, id kernel.UUID) (bool, error)
}
