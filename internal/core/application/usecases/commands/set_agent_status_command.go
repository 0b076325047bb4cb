package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetAgentStatusCommandIsNotConstructed = errors.New(
	"SetAgentStatusCommand must be created via NewSetAgentStatusCommand constructor",
)

// SetAgentStatusCommand represents an explicit availability change for an
// agent, e.g. going AVAILABLE at shift start or OFFLINE at shift end.
type SetAgentStatusCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	status  agent.Status

	guard guard.ConstructorGuard
}

// NewSetAgentStatusCommand creates a command to change an agent's status.
func NewSetAgentStatusCommand(agentID kernel.UUID, status agent.Status) (SetAgentStatusCommand, error) {
	cmd := SetAgentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setStatus(status),
	); err != nil {
		return SetAgentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAgentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetAgentStatusCommandIsNotConstructed)
}

// AgentID returns the agent's identifier.
func (c SetAgentStatusCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Status returns the requested availability.
func (c SetAgentStatusCommand) Status() agent.Status {
	return c.status
}

func (c *SetAgentStatusCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *SetAgentStatusCommand) setStatus(status agent.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
