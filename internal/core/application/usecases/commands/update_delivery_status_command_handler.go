package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler records a reported delivery status.
//
// The status is applied unconditionally; side effects follow from it:
// DELIVERED releases the agent back to AVAILABLE and counts the
// completed delivery, CANCELLED and FAILED release the agent without
// counting. Every update appends a tracking entry and publishes a
// DELIVERY_<STATUS> event after commit.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	settings   AssignmentSettings
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status updates.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	settings AssignmentSettings,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		settings:   settings,
	}
}

// Handle processes the status update command.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.ApplyStatus(cmd.NewStatus(), cmd.Remarks(), now); err != nil {
		return err
	}

	assigned, err := h.releaseAgentIfDone(ctx, uow, aggregate, cmd.NewStatus(), now)
	if err != nil {
		return err
	}

	if err = aggregate.AppendTracking(trackingPosition(assigned, aggregate, h.settings.DefaultPosition), cmd.Remarks(), now); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishDeliveryEvent(ctx, makeDeliveryEvent(aggregate, assigned, now))
}

// releaseAgentIfDone loads the assigned agent (when there is one) and, if
// the new status ends the delivery, releases it. The completed-delivery
// counter only moves on DELIVERED. Returns the loaded agent for event
// enrichment, nil when the delivery has no agent.
func (h UpdateDeliveryStatusCommandHandler) releaseAgentIfDone(
	ctx context.Context,
	uow DeliveryUoW,
	aggregate *delivery.Delivery,
	newStatus delivery.Status,
	now time.Time,
) (*agent.Agent, error) {
	agentID := aggregate.AgentID()
	if agentID == nil {
		return nil, nil
	}

	agentRepo := uow.AgentRepository()
	assigned, err := agentRepo.Get(ctx, *agentID)
	if err != nil {
		return nil, err
	}

	if !newStatus.ReleasesAgent() {
		return assigned, nil
	}

	// A replayed terminal update finds the agent already released; releasing
	// again would double-count the delivery.
	if assigned.Status() != agent.StatusBusy {
		return assigned, nil
	}

	assigned.Release(newStatus == delivery.StatusDelivered, now)
	if err = agentRepo.Update(ctx, assigned); err != nil {
		return nil, err
	}

	return assigned, nil
}
