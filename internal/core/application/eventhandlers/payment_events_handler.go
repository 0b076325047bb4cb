package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// PaymentEventsHandler reacts to payment outcomes on the order side of
// the choreography. The status vocabulary varies by producer, so the raw
// status string is normalized before it reaches the domain.
type PaymentEventsHandler struct {
	applyOutcome commands.ApplyPaymentOutcomeCommandHandler
	logger       *slog.Logger
}

// NewPaymentEventsHandler creates the payment event consumer logic.
func NewPaymentEventsHandler(
	applyOutcome commands.ApplyPaymentOutcomeCommandHandler,
	logger *slog.Logger,
) PaymentEventsHandler {
	return PaymentEventsHandler{
		applyOutcome: applyOutcome,
		logger:       logger.With("component", "payment_events_handler"),
	}
}

// Handle processes one payment event. Events for unknown orders are
// logged and dropped.
func (h PaymentEventsHandler) Handle(ctx context.Context, event contracts.PaymentEvent) error {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return Terminal(fmt.Errorf("order id %q: %w", event.OrderID, err))
	}

	outcome := contracts.ParsePaymentOutcome(event.Status)

	cmd, err := commands.NewApplyPaymentOutcomeCommand(orderID, outcome)
	if err != nil {
		return Terminal(err)
	}

	err = h.applyOutcome.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "Payment event for unknown order", "orderId", event.OrderID, "status", event.Status)
		return nil
	}
	return err
}
