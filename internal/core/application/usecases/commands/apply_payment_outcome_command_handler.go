package commands

import (
	"context"
	"time"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/ports"
)

// ApplyPaymentOutcomeCommandHandler records a payment result on an order.
//
// A successful payment completes the payment status and confirms the
// order, publishing ORDER_CONFIRMED so the delivery service creates a
// delivery. A failed payment only marks the payment FAILED: the order
// stays where it is, blocked rather than cancelled, and no event is
// published.
type ApplyPaymentOutcomeCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewApplyPaymentOutcomeCommandHandler creates a handler for payment outcomes.
func NewApplyPaymentOutcomeCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ApplyPaymentOutcomeCommandHandler {
	return ApplyPaymentOutcomeCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the payment outcome command.
func (h ApplyPaymentOutcomeCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentOutcomeCommand) error {
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
	if cmd.Outcome().IsSuccess() {
		aggregate.MarkPaymentCompleted(now)
	} else {
		aggregate.MarkPaymentFailed(now)
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !cmd.Outcome().IsSuccess() {
		return nil
	}

	return h.publisher.PublishOrderEvent(ctx, makeOrderEvent(aggregate, contracts.EventOrderConfirmed, now))
}
