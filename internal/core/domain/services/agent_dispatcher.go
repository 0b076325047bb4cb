package services

import (
	"errors"
	"math"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/delivery"
)

// ErrAgentNotFound is returned when no suitable agent is available for a
// delivery. This is an expected outcome, not a failure: the delivery stays
// pending and assignment is retried on an explicit manual-assign call.
var ErrAgentNotFound = errors.New("agent not found")

// AgentDispatcher is a domain service responsible for finding the optimal
// delivery agent for a pending delivery based on the shortest great-circle
// distance to the pickup point.
//
// Business rules:
//   - Only AVAILABLE agents are considered
//   - Distance is the Haversine distance between the agent's reported
//     position and the delivery's pickup coordinates
//   - An agent with no reported position is treated as infinitely far away,
//     so it is never chosen over an agent with a known position
//   - Ties are broken by candidate order: the first minimum wins
//
// Example usage:
//
//	dispatcher := NewAgentDispatcher()
//	best, err := dispatcher.FindBestAgent(pending, candidates)
//	if errors.Is(err, ErrAgentNotFound) {
//	    // delivery stays pending
//	    return
//	}
type AgentDispatcher struct{}

// NewAgentDispatcher creates a new AgentDispatcher instance.
func NewAgentDispatcher() AgentDispatcher {
	return AgentDispatcher{}
}

// FindBestAgent selects the closest AVAILABLE agent for the delivery.
//
// Parameters:
//   - d: the delivery to assign (must be valid)
//   - candidates: agents to consider, typically all AVAILABLE agents
//
// Returns:
//   - *agent.Agent: the closest available agent
//   - error: ErrAgentNotFound if no candidate is available, or validation errors
//
// The caller is responsible for claiming the chosen agent; selection has
// no side effects, so a concurrent claim can still lose the race and must
// be handled at the persistence layer.
func (ad AgentDispatcher) FindBestAgent(d *delivery.Delivery, candidates []*agent.Agent) (*agent.Agent, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var (
		bestAgent    *agent.Agent
		bestDistance = math.MaxFloat64
	)

	for _, a := range candidates {
		if err := a.Validate(); err != nil {
			return nil, err
		}

		if a.Status() != agent.StatusAvailable {
			continue
		}

		distance, err := ad.distanceToPickup(d, a)
		if err != nil {
			return nil, err
		}

		if distance < bestDistance {
			bestDistance = distance
			bestAgent = a
		}

		if bestAgent == nil {
			bestAgent = a
		}
	}

	if bestAgent == nil {
		return nil, ErrAgentNotFound
	}

	return bestAgent, nil
}

// distanceToPickup computes the Haversine distance from the agent to the
// delivery's pickup point. Missing coordinates on either side yield
// math.MaxFloat64 so that positioned agents always win over unpositioned
// ones.
func (ad AgentDispatcher) distanceToPickup(d *delivery.Delivery, a *agent.Agent) (float64, error) {
	pickup := d.PickupPosition()
	position := a.Position()

	if pickup == nil || position == nil {
		return math.MaxFloat64, nil
	}

	return position.DistanceKm(*pickup)
}
