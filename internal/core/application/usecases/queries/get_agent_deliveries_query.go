package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAgentDeliveriesQueryIsNotConstructed = errors.New(
	"GetAgentDeliveriesQuery must be created via NewGetAgentDeliveriesQuery constructor",
)

// GetAgentDeliveriesQuery retrieves the deliveries assigned to one agent,
// newest first.
type GetAgentDeliveriesQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentDeliveriesQuery creates a query for an agent's deliveries.
func NewGetAgentDeliveriesQuery(agentID kernel.UUID) (GetAgentDeliveriesQuery, error) {
	q := GetAgentDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setAgentID(agentID); err != nil {
		return GetAgentDeliveriesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentDeliveriesQueryIsNotConstructed)
}

// AgentID returns the agent whose deliveries are requested.
func (q GetAgentDeliveriesQuery) AgentID() kernel.UUID {
	return q.agentID
}

func (q *GetAgentDeliveriesQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	q.agentID = agentID
	return nil
}

// GetAgentDeliveriesQueryResponse is the read model for one delivery in
// an agent's workload.
type GetAgentDeliveriesQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Status          string
	PickupAddress   string
	DeliveryAddress string
	Fee             decimal.Decimal
	AssignedAt      *time.Time
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}
