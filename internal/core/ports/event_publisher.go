package ports

import (
	"context"

	"fooddelivery/internal/contracts"
)

// EventPublisher publishes domain events to the message broker. Messages
// are routed by the order id (user id for user events) so all events for
// one order arrive in publish order.
//
// Publish failures must propagate to the caller: a consumer that fails to
// publish its resulting events must not acknowledge the inbound message.
type EventPublisher interface {
	// PublishOrderEvent publishes to the order events topic.
	PublishOrderEvent(ctx context.Context, event contracts.OrderEvent) error

	// PublishDeliveryEvent publishes to the delivery events topic.
	PublishDeliveryEvent(ctx context.Context, event contracts.DeliveryEvent) error
}
