package contracts

// Topic names shared by every service. One topic per domain; messages are
// routed by order id (user id for user events) so all events for one
// order land on the same queue in publish order.
const (
	// TopicOrderEvents carries order lifecycle events.
	TopicOrderEvents = "order-events"

	// TopicPaymentEvents carries payment outcome events.
	TopicPaymentEvents = "payment-events"

	// TopicDeliveryEvents carries delivery progress events.
	TopicDeliveryEvents = "delivery-events"

	// TopicUserEvents carries user account events.
	TopicUserEvents = "user-events"

	// TopicNotificationEvents carries notification projections consumed
	// by the notification service.
	TopicNotificationEvents = "notification-events"
)
