package commands

import (
	"context"
	"time"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order. Cancellation succeeds from
// any non-terminal state, bypassing the step-by-step transition table, and
// publishes an ORDER_CANCELLED event; the delivery service reacts by
// cancelling the corresponding delivery.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
//
// Returns an object-not-found error for unknown orders and an
// invalid-state error when the order is already DELIVERED or CANCELLED.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err = aggregate.Cancel(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishOrderEvent(ctx, makeOrderEvent(aggregate, contracts.EventOrderCancelled, now))
}
