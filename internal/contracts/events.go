package contracts

import "time"

// Order event types.
const (
	EventOrderCreated   = "ORDER_CREATED"
	EventOrderConfirmed = "ORDER_CONFIRMED"
	EventOrderCancelled = "ORDER_CANCELLED"
	EventStatusChanged  = "STATUS_CHANGED"
)

// Delivery event types are "DELIVERY_" + the delivery status, e.g.
// DELIVERY_ASSIGNED or DELIVERY_DELIVERED. DeliveryEventType builds them.
const (
	EventDeliveryAssigned  = "DELIVERY_ASSIGNED"
	EventDeliveryPickedUp  = "DELIVERY_PICKED_UP"
	EventDeliveryInTransit = "DELIVERY_IN_TRANSIT"
	EventDeliveryDelivered = "DELIVERY_DELIVERED"
	EventDeliveryCompleted = "DELIVERY_COMPLETED"
	EventDeliveryCancelled = "DELIVERY_CANCELLED"
	EventDeliveryFailed    = "DELIVERY_FAILED"
)

// User event types.
const (
	EventUserRegistered = "USER_REGISTERED"
)

// DeliveryEventType returns the event type for a delivery status string.
func DeliveryEventType(status string) string {
	return "DELIVERY_" + status
}

// OrderEvent is the envelope published for order lifecycle changes.
// Coordinates and fee fields are pointers because upstream producers may
// omit them; consumers fall back to configured defaults.
type OrderEvent struct {
	EventType string    `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`

	OrderID      string `json:"orderId"`
	CustomerID   string `json:"customerId"`
	RestaurantID string `json:"restaurantId"`
	Status       string `json:"status"`

	TotalAmount string `json:"totalAmount,omitempty"`

	DeliveryAddress   string   `json:"deliveryAddress,omitempty"`
	DeliveryLatitude  *float64 `json:"deliveryLatitude,omitempty"`
	DeliveryLongitude *float64 `json:"deliveryLongitude,omitempty"`

	PickupAddress   string   `json:"pickupAddress,omitempty"`
	PickupLatitude  *float64 `json:"pickupLatitude,omitempty"`
	PickupLongitude *float64 `json:"pickupLongitude,omitempty"`

	DeliveryInstructions string `json:"deliveryInstructions,omitempty"`
	DeliveryFee          string `json:"deliveryFee,omitempty"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}

// DeliveryEvent is the envelope published for delivery progress.
type DeliveryEvent struct {
	EventType string    `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`

	DeliveryID string `json:"deliveryId"`
	OrderID    string `json:"orderId"`
	Status     string `json:"status"`

	DeliveryAgentID    string `json:"deliveryAgentId,omitempty"`
	DeliveryAgentName  string `json:"deliveryAgentName,omitempty"`
	DeliveryAgentPhone string `json:"deliveryAgentPhone,omitempty"`

	DeliveryAddress string `json:"deliveryAddress,omitempty"`

	CurrentLatitude  *float64 `json:"currentLatitude,omitempty"`
	CurrentLongitude *float64 `json:"currentLongitude,omitempty"`

	EstimatedDeliveryTime string `json:"estimatedDeliveryTime,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

// PaymentEvent is the envelope consumed for payment outcomes. The status
// vocabulary is inconsistent across producers; use ParsePaymentOutcome
// rather than comparing Status directly.
type PaymentEvent struct {
	EventType string    `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`

	OrderID       string `json:"orderId"`
	PaymentID     string `json:"paymentId,omitempty"`
	Status        string `json:"status"`
	Amount        string `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// UserEvent is the envelope published for user account changes.
type UserEvent struct {
	EventType string    `json:"eventType"`
	Timestamp time.Time `json:"timestamp"`

	UserID   string `json:"userId"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}
