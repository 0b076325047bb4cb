package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
)

// MarkStaleAgentsOfflineCommandHandler flips AVAILABLE agents whose last
// activity is older than the window to OFFLINE. BUSY agents are left
// alone even when stale: they hold an active delivery and are released
// through the delivery status flow instead.
type MarkStaleAgentsOfflineCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewMarkStaleAgentsOfflineCommandHandler creates a handler for the
// liveness sweep.
func NewMarkStaleAgentsOfflineCommandHandler(uowFactory AgentUoWFactory) MarkStaleAgentsOfflineCommandHandler {
	return MarkStaleAgentsOfflineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one liveness sweep.
func (h MarkStaleAgentsOfflineCommandHandler) Handle(ctx context.Context, cmd MarkStaleAgentsOfflineCommand) error {
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
	agentRepo := uow.AgentRepository()

	stale, err := agentRepo.GetAllStale(ctx, now.Add(-cmd.Window()))
	if err != nil {
		return err
	}

	for _, aggregate := range stale {
		if aggregate.Status() != agent.StatusAvailable {
			continue
		}

		aggregate.MarkOffline(now)

		if err = agentRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
