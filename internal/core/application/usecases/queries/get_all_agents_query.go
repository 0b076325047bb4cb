package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves the full agent roster for fleet monitoring.
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a query to retrieve all agents.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// GetAllAgentsQueryResponse is the read model for one agent. Position is
// nil for agents that have never reported coordinates.
type GetAllAgentsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	VehicleType     string
	Status          string
	Position        *kernel.GeoPoint
	TotalDeliveries int
	Rating          float64
	LastActiveAt    time.Time
}
