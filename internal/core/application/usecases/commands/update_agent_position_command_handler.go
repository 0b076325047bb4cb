package commands

import (
	"context"
	"time"
)

// UpdateAgentPositionCommandHandler records an agent position report and
// refreshes the agent's last-active timestamp so the liveness sweep does
// not take the agent offline.
type UpdateAgentPositionCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewUpdateAgentPositionCommandHandler creates a handler for position
// reports.
func NewUpdateAgentPositionCommandHandler(uowFactory AgentUoWFactory) UpdateAgentPositionCommandHandler {
	return UpdateAgentPositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
func (h UpdateAgentPositionCommandHandler) Handle(ctx context.Context, cmd UpdateAgentPositionCommand) error {
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

	agentRepo := uow.AgentRepository()
	aggregate, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdatePosition(cmd.Position(), time.Now().UTC()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
