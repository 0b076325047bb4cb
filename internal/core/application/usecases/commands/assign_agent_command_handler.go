package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/ports"
)

// AssignAgentCommandHandler assigns a specific agent to a pending
// delivery. Unlike the auto-assign path, failing to claim the agent is an
// error here: the caller named an agent and is told when that agent was
// not available.
type AssignAgentCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	settings   AssignmentSettings
}

// NewAssignAgentCommandHandler creates a handler for manual assignment.
func NewAssignAgentCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	settings AssignmentSettings,
) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		settings:   settings,
	}
}

// Handle processes the manual assignment command.
//
// Returns an object-not-found error when the delivery or agent is
// missing, and an invalid-state error when the delivery is not PENDING or
// the agent is not AVAILABLE. The agent claim is an atomic conditional
// update, so concurrent assignments of the same agent resolve to exactly
// one winner.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	agentRepo := uow.AgentRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	claimed, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = agentRepo.ClaimAvailable(ctx, claimed.ID()); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = claimed.MarkBusy(now); err != nil {
		return err
	}

	if err = aggregate.Assign(claimed.ID(), now, now.Add(h.settings.SLA)); err != nil {
		return err
	}

	if err = aggregate.AppendTracking(trackingPosition(claimed, aggregate, h.settings.DefaultPosition), "agent assigned", now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, claimed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishDeliveryEvent(ctx, makeDeliveryEvent(aggregate, claimed, now))
}
