package amqp

import (
	"context"
	"encoding/json"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/application/eventhandlers"
)

// OrderEventsMessageHandler decodes order events and dispatches them.
// Undecodable payloads are terminal; redelivery cannot fix them.
func OrderEventsMessageHandler(handler eventhandlers.OrderEventsHandler) MessageHandler {
	return func(ctx context.Context, body []byte) error {
		var event contracts.OrderEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return eventhandlers.Terminal(err)
		}

		return handler.Handle(ctx, event)
	}
}

// DeliveryEventsMessageHandler decodes delivery events and dispatches them.
func DeliveryEventsMessageHandler(handler eventhandlers.DeliveryEventsHandler) MessageHandler {
	return func(ctx context.Context, body []byte) error {
		var event contracts.DeliveryEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return eventhandlers.Terminal(err)
		}

		return handler.Handle(ctx, event)
	}
}

// PaymentEventsMessageHandler decodes payment events and dispatches them.
func PaymentEventsMessageHandler(handler eventhandlers.PaymentEventsHandler) MessageHandler {
	return func(ctx context.Context, body []byte) error {
		var event contracts.PaymentEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return eventhandlers.Terminal(err)
		}

		return handler.Handle(ctx, event)
	}
}
