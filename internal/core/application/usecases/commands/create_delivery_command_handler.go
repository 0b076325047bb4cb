package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CreateDeliveryCommandHandler creates a delivery for an order and
// immediately attempts to assign the closest available agent.
//
// If no agent is available the delivery stays PENDING and no event is
// published; assignment is retried only on an explicit manual-assign
// call. Creating a second delivery for the same order fails with a
// duplicate-delivery error and causes no side effects.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	dispatcher services.AgentDispatcher
	settings   AssignmentSettings
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	settings AssignmentSettings,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		dispatcher: services.NewAgentDispatcher(),
		settings:   settings,
	}
}

// Handle processes the delivery creation command.
//
// The duplicate guard, the PENDING insert and the assignment attempt run
// in one transaction: a concurrent claim on the chosen agent rolls the
// whole creation back and the broker redelivers the triggering event.
// DELIVERY_ASSIGNED is published only after a successful commit of a
// successful assignment.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	exists, err := deliveryRepo.ExistsByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewDuplicateDeliveryError(cmd.OrderID().String())
	}

	now := time.Now().UTC()
	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.OrderID(), cmd.RestaurantID(), cmd.CustomerID(),
		cmd.PickupAddress(), cmd.DeliveryAddress(),
		cmd.PickupPosition(), cmd.DeliveryPosition(),
		cmd.Instructions(), cmd.Fee(), now,
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	assigned, err := h.tryAssign(ctx, uow, aggregate, now)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if assigned == nil {
		return nil
	}

	return h.publisher.PublishDeliveryEvent(ctx, makeDeliveryEvent(aggregate, assigned, now))
}

// tryAssign picks the closest available agent and claims it. Returns the
// claimed agent, or nil (without error) when no agent is available.
func (h CreateDeliveryCommandHandler) tryAssign(
	ctx context.Context,
	uow DeliveryUoW,
	aggregate *delivery.Delivery,
	now time.Time,
) (*agent.Agent, error) {
	agentRepo := uow.AgentRepository()

	candidates, err := agentRepo.GetAllByStatus(ctx, agent.StatusAvailable)
	if err != nil {
		return nil, err
	}

	best, err := h.dispatcher.FindBestAgent(aggregate, candidates)
	if errors.Is(err, services.ErrAgentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err = agentRepo.ClaimAvailable(ctx, best.ID()); err != nil {
		return nil, err
	}

	if err = best.MarkBusy(now); err != nil {
		return nil, err
	}

	if err = aggregate.Assign(best.ID(), now, now.Add(h.settings.SLA)); err != nil {
		return nil, err
	}

	if err = aggregate.AppendTracking(trackingPosition(best, aggregate, h.settings.DefaultPosition), "agent assigned", now); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = agentRepo.Update(ctx, best); err != nil {
		return nil, err
	}

	return best, nil
}

// trackingPosition resolves the position for a tracking entry: the agent's
// reported position, falling back to the delivery's pickup coordinates,
// falling back to the configured default.
func trackingPosition(a *agent.Agent, d *delivery.Delivery, fallback kernel.GeoPoint) kernel.GeoPoint {
	if a != nil {
		if pos := a.Position(); pos != nil {
			return *pos
		}
	}

	if pos := d.PickupPosition(); pos != nil {
		return *pos
	}

	return fallback
}
