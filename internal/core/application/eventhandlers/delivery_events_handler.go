package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// DeliveryEventsHandler reacts to delivery progress events on the order
// side of the choreography, reflecting delivery milestones onto the order
// status through the delivery-driven transition table. Moves the table
// forbids are skipped silently, which makes replays harmless.
type DeliveryEventsHandler struct {
	uowFactory commands.OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDeliveryEventsHandler creates the delivery event consumer logic.
func NewDeliveryEventsHandler(
	uowFactory commands.OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeliveryEventsHandler {
	return DeliveryEventsHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "delivery_events_handler"),
	}
}

// orderStatusForDeliveryEvent maps a delivery event type to the order
// status it implies. Unlisted event types do not touch the order.
func orderStatusForDeliveryEvent(eventType string) (order.Status, bool) {
	switch eventType {
	case contracts.EventDeliveryAssigned:
		return order.StatusReady, true
	case contracts.EventDeliveryPickedUp:
		return order.StatusPickedUp, true
	case contracts.EventDeliveryDelivered, contracts.EventDeliveryCompleted:
		return order.StatusDelivered, true
	case contracts.EventDeliveryCancelled, contracts.EventDeliveryFailed:
		return order.StatusCancelled, true
	default:
		return order.StatusUnknown, false
	}
}

// Handle processes one delivery event. Events for unknown orders are
// dropped: the order belongs to another shard or was purged, and requeueing
// cannot conjure it.
func (h DeliveryEventsHandler) Handle(ctx context.Context, event contracts.DeliveryEvent) error {
	target, ok := orderStatusForDeliveryEvent(event.EventType)
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return Terminal(fmt.Errorf("order id %q: %w", event.OrderID, err))
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "Delivery event for unknown order", "orderId", event.OrderID, "eventType", event.EventType)
		return nil
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if !aggregate.ApplyDeliveryDrivenStatus(target, now) {
		h.logger.InfoContext(ctx, "Skipping delivery-driven move",
			"orderId", event.OrderID, "from", aggregate.Status().String(), "to", target.String())
		return nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	statusEvent := contracts.OrderEvent{
		EventType:    contracts.EventStatusChanged,
		Timestamp:    now,
		OrderID:      aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Status:       aggregate.Status().String(),
	}
	return h.publisher.PublishOrderEvent(ctx, statusEvent)
}
