package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a newly registered agent.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAllByStatus retrieves all agents with the given availability.
	GetAllByStatus(ctx context.Context, status agent.Status) ([]*agent.Agent, error)

	// ClaimAvailable atomically moves the agent from AVAILABLE to BUSY
	// with a conditional update, closing the race between concurrent
	// assignment attempts. Returns an invalid-state error if the agent
	// was not AVAILABLE at claim time, and an object-not-found error if
	// the agent does not exist.
	ClaimAvailable(ctx context.Context, id kernel.UUID) error

	// GetAllStale retrieves agents whose lastActiveAt is older than the
	// cutoff and whose status is not OFFLINE. Used by the liveness sweep.
	GetAllStale(ctx context.Context, cutoff time.Time) ([]*agent.Agent, error)
}
