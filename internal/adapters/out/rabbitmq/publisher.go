package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"

	"fooddelivery/internal/contracts"
)

// EventPublisher implements ports.EventPublisher over the reconnecting
// AMQP client. Publish errors propagate to the caller so an inbound
// message whose follow-up events cannot be published is not acknowledged.
type EventPublisher struct {
	client *Client
	logger *slog.Logger
}

// NewEventPublisher creates a publisher over an established client.
func NewEventPublisher(client *Client, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		client: client,
		logger: logger.With("component", "event_publisher"),
	}
}

// PublishOrderEvent publishes to the order events topic, routed by order
// id.
func (p *EventPublisher) PublishOrderEvent(ctx context.Context, event contracts.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, contracts.TopicOrderEvents, event.OrderID, body); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "published order event",
		"event_type", event.EventType,
		"order_id", event.OrderID,
	)
	return nil
}

// PublishDeliveryEvent publishes to the delivery events topic, routed by
// order id so delivery progress stays ordered with the order's events.
func (p *EventPublisher) PublishDeliveryEvent(ctx context.Context, event contracts.DeliveryEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, contracts.TopicDeliveryEvents, event.OrderID, body); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "published delivery event",
		"event_type", event.EventType,
		"delivery_id", event.DeliveryID,
		"order_id", event.OrderID,
	)
	return nil
}
