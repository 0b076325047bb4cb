package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDeliveryAddressMissing is returned when a confirmed order arrives
// without a delivery address. The message is requeued: the producer may
// re-emit a complete event, and a delivery without a destination cannot be
// created.
var ErrDeliveryAddressMissing = errors.New("order event has no delivery address")

// DeliveryDefaults fills gaps in inbound order events: producers do not
// always carry pickup details or a fee.
type DeliveryDefaults struct {
	PickupAddress  string
	PickupPosition kernel.GeoPoint
	Fee            decimal.Decimal
}

// OrderEventsHandler reacts to order lifecycle events on the delivery
// side of the choreography. ORDER_CONFIRMED creates a delivery and
// attempts agent assignment; ORDER_CANCELLED cancels the delivery if one
// exists. All other order event types are ignored.
type OrderEventsHandler struct {
	createDelivery commands.CreateDeliveryCommandHandler
	updateStatus   commands.UpdateDeliveryStatusCommandHandler
	uowFactory     commands.DeliveryUoWFactory
	defaults       DeliveryDefaults
	logger         *slog.Logger
}

// NewOrderEventsHandler creates the order event consumer logic.
func NewOrderEventsHandler(
	createDelivery commands.CreateDeliveryCommandHandler,
	updateStatus commands.UpdateDeliveryStatusCommandHandler,
	uowFactory commands.DeliveryUoWFactory,
	defaults DeliveryDefaults,
	logger *slog.Logger,
) OrderEventsHandler {
	return OrderEventsHandler{
		createDelivery: createDelivery,
		updateStatus:   updateStatus,
		uowFactory:     uowFactory,
		defaults:       defaults,
		logger:         logger.With("component", "order_events_handler"),
	}
}

// Handle dispatches one order event. A nil return acknowledges the
// message; see Terminal for the drop-after-logging path.
func (h OrderEventsHandler) Handle(ctx context.Context, event contracts.OrderEvent) error {
	switch event.EventType {
	case contracts.EventOrderConfirmed:
		return h.handleConfirmed(ctx, event)
	case contracts.EventOrderCancelled:
		return h.handleCancelled(ctx, event)
	default:
		return nil
	}
}

func (h OrderEventsHandler) handleConfirmed(ctx context.Context, event contracts.OrderEvent) error {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return Terminal(fmt.Errorf("order id %q: %w", event.OrderID, err))
	}
	restaurantID, err := kernel.UUIDFromString(event.RestaurantID)
	if err != nil {
		return Terminal(fmt.Errorf("restaurant id %q: %w", event.RestaurantID, err))
	}
	customerID, err := kernel.UUIDFromString(event.CustomerID)
	if err != nil {
		return Terminal(fmt.Errorf("customer id %q: %w", event.CustomerID, err))
	}

	if event.DeliveryAddress == "" {
		return fmt.Errorf("order %s: %w", event.OrderID, ErrDeliveryAddressMissing)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), orderID, restaurantID, customerID,
		h.pickupAddress(event), event.DeliveryAddress,
		h.pickupPosition(event), geoPointFrom(event.DeliveryLatitude, event.DeliveryLongitude),
		event.DeliveryInstructions, h.fee(event),
	)
	if err != nil {
		return Terminal(err)
	}

	err = h.createDelivery.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrDuplicateDelivery) {
		// Redelivered confirmation; the delivery already exists.
		h.logger.InfoContext(ctx, "Skipping duplicate delivery creation", "orderId", event.OrderID)
		return nil
	}
	return err
}

func (h OrderEventsHandler) handleCancelled(ctx context.Context, event contracts.OrderEvent) error {
	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		return Terminal(fmt.Errorf("order id %q: %w", event.OrderID, err))
	}

	existing, err := h.findByOrderID(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		// The order was cancelled before a delivery was created.
		h.logger.InfoContext(ctx, "No delivery to cancel", "orderId", event.OrderID)
		return nil
	}
	if err != nil {
		return err
	}

	if existing.Status().IsTerminal() {
		return nil
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(existing.ID(), delivery.StatusCancelled, "order cancelled")
	if err != nil {
		return Terminal(err)
	}

	return h.updateStatus.Handle(ctx, cmd)
}

// findByOrderID is a read-only lookup; the transaction is rolled back.
func (h OrderEventsHandler) findByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.DeliveryRepository().GetByOrderID(ctx, orderID)
}

func (h OrderEventsHandler) pickupAddress(event contracts.OrderEvent) string {
	if event.PickupAddress != "" {
		return event.PickupAddress
	}
	return h.defaults.PickupAddress
}

func (h OrderEventsHandler) pickupPosition(event contracts.OrderEvent) *kernel.GeoPoint {
	if position := geoPointFrom(event.PickupLatitude, event.PickupLongitude); position != nil {
		return position
	}
	fallback := h.defaults.PickupPosition
	return &fallback
}

func (h OrderEventsHandler) fee(event contracts.OrderEvent) decimal.Decimal {
	if event.DeliveryFee == "" {
		return h.defaults.Fee
	}
	fee, err := decimal.NewFromString(event.DeliveryFee)
	if err != nil {
		return h.defaults.Fee
	}
	return fee
}

func geoPointFrom(latitude, longitude *float64) *kernel.GeoPoint {
	if latitude == nil || longitude == nil {
		return nil
	}
	position, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil
	}
	return &position
}
