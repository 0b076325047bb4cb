package commands

import (
	"context"
	"time"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves an order through its workflow.
// Transitions are checked against the strict table; a successful move
// stamps the updated time and publishes an order event. CONFIRMED and
// CANCELLED have their own event types, every other move publishes
// STATUS_CHANGED.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for direct order
// status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
//
// Returns an object-not-found error for unknown orders and an
// invalid-transition error when the workflow forbids the move.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.TransitionTo(cmd.Target(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishOrderEvent(ctx, makeOrderEvent(aggregate, orderEventTypeFor(cmd.Target()), now))
}

// orderEventTypeFor maps a new order status to its event type. The
// confirmation and cancellation transitions carry dedicated types that
// downstream services key on.
func orderEventTypeFor(status order.Status) string {
	switch status {
	case order.StatusConfirmed:
		return contracts.EventOrderConfirmed
	case order.StatusCancelled:
		return contracts.EventOrderCancelled
	case order.StatusUnknown, order.StatusPending, order.StatusPreparing,
		order.StatusReady, order.StatusPickedUp, order.StatusDelivered:
		return contracts.EventStatusChanged
	}
	return contracts.EventStatusChanged
}
