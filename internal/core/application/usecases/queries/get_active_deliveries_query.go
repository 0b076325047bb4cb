// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projection-friendly rows
// straight from the database.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves all deliveries that have not yet
// reached a terminal status, for dispatch monitoring.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query to retrieve in-flight
// deliveries. This is a parameterless query.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is the read model for one in-flight
// delivery. AgentID and EstimatedDeliveryTime are nil while the delivery
// is still PENDING.
type GetActiveDeliveriesQueryResponse struct {
	ID                    kernel.UUID
	OrderID               kernel.UUID
	AgentID               *kernel.UUID
	Status                string
	DeliveryAddress       string
	Fee                   decimal.Decimal
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
}
