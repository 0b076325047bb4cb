package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/pkg/errs"
)

// SetAgentStatusCommandHandler applies an explicit availability change to
// an agent. A BUSY agent holds an active delivery and cannot change
// status here; it is released through the delivery status flow.
type SetAgentStatusCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewSetAgentStatusCommandHandler creates a handler for availability
// changes.
func NewSetAgentStatusCommandHandler(uowFactory AgentUoWFactory) SetAgentStatusCommandHandler {
	return SetAgentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change.
func (h SetAgentStatusCommandHandler) Handle(ctx context.Context, cmd SetAgentStatusCommand) error {
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

	if aggregate.Status() == agent.StatusBusy && cmd.Status() != agent.StatusBusy {
		return errs.NewInvalidStateError("agent", aggregate.Status().String(), "set status")
	}

	if err = aggregate.SetStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
