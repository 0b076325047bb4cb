package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a manual request to assign a specific
// agent to a pending delivery. This is also the retry path for deliveries
// left PENDING because no agent was available at creation time.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	agentID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign an agent to a delivery.
func NewAssignAgentCommand(deliveryID, agentID kernel.UUID) (AssignAgentCommand, error) {
	cmd := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// DeliveryID returns the delivery to assign.
func (c AssignAgentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// AgentID returns the agent to claim.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AssignAgentCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
