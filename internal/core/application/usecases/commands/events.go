package commands

import (
	"time"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/order"
)

// makeOrderEvent builds the order event envelope for the aggregate's
// current state.
func makeOrderEvent(o *order.Order, eventType string, now time.Time) contracts.OrderEvent {
	return contracts.OrderEvent{
		EventType:            eventType,
		Timestamp:            now,
		OrderID:              o.ID().String(),
		CustomerID:           o.CustomerID().String(),
		RestaurantID:         o.RestaurantID().String(),
		Status:               o.Status().String(),
		TotalAmount:          o.TotalAmount().String(),
		DeliveryAddress:      o.DeliveryAddress(),
		DeliveryInstructions: o.SpecialInstructions(),
	}
}

// makeDeliveryEvent builds the delivery event envelope for the aggregate's
// current state. The agent is optional; when present its identity, contact
// and position enrich the event.
func makeDeliveryEvent(d *delivery.Delivery, a *agent.Agent, now time.Time) contracts.DeliveryEvent {
	event := contracts.DeliveryEvent{
		EventType:       contracts.DeliveryEventType(d.Status().String()),
		Timestamp:       now,
		DeliveryID:      d.ID().String(),
		OrderID:         d.OrderID().String(),
		Status:          d.Status().String(),
		DeliveryAddress: d.DeliveryAddress(),
	}

	if eta := d.EstimatedDeliveryTime(); eta != nil {
		event.EstimatedDeliveryTime = eta.Format(time.RFC3339)
	}

	if a != nil {
		event.DeliveryAgentID = a.ID().String()
		event.DeliveryAgentName = a.Name()
		event.DeliveryAgentPhone = a.Phone()

		if pos := a.Position(); pos != nil {
			lat, long := pos.Latitude(), pos.Longitude()
			event.CurrentLatitude = &lat
			event.CurrentLongitude = &long
		}
	}

	return event
}
