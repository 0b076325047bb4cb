package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateAgentPositionCommandIsNotConstructed = errors.New(
	"UpdateAgentPositionCommand must be created via NewUpdateAgentPositionCommand constructor",
)

// UpdateAgentPositionCommand represents a position report from an agent's
// device. Position reports also refresh the agent's liveness timestamp.
type UpdateAgentPositionCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	position kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateAgentPositionCommand creates a command to update an agent's
// position.
func NewUpdateAgentPositionCommand(agentID kernel.UUID, position kernel.GeoPoint) (UpdateAgentPositionCommand, error) {
	cmd := UpdateAgentPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setPosition(position),
	); err != nil {
		return UpdateAgentPositionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAgentPositionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentPositionCommandIsNotConstructed)
}

// AgentID returns the reporting agent's identifier.
func (c UpdateAgentPositionCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Position returns the reported position.
func (c UpdateAgentPositionCommand) Position() kernel.GeoPoint {
	return c.position
}

func (c *UpdateAgentPositionCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *UpdateAgentPositionCommand) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	c.position = position
	return nil
}
