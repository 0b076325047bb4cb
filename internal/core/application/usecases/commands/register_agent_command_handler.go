package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
)

// RegisterAgentCommandHandler registers a new delivery agent. Agents
// start OFFLINE and must be flipped to AVAILABLE before they can be
// considered for assignment.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent registration.
func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	aggregate, err := agent.NewAgent(
		cmd.AgentID(),
		cmd.Name(),
		cmd.Phone(),
		cmd.VehicleType(),
		cmd.Position(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.AgentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
