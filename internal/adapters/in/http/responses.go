package http

import "time"

// ErrorResponse is the uniform error payload returned on failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse returns the identifier assigned to a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// GeoPointResponse carries a coordinate pair in a response body.
type GeoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderResponse is a customer-facing order summary.
type OrderResponse struct {
	ID            string    `json:"id"`
	RestaurantID  string    `json:"restaurantId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalAmount   float64   `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderItemResponse is one line item of an order.
type OrderItemResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Subtotal   float64 `json:"subtotal"`
}

// OrderDetailResponse is a full order including its line items.
type OrderDetailResponse struct {
	ID                  string              `json:"id"`
	CustomerID          string              `json:"customerId"`
	RestaurantID        string              `json:"restaurantId"`
	Status              string              `json:"status"`
	PaymentStatus       string              `json:"paymentStatus"`
	TotalAmount         float64             `json:"totalAmount"`
	DeliveryAddress     string              `json:"deliveryAddress"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	Items               []OrderItemResponse `json:"items"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// DeliveryDetailResponse is a full delivery record.
type DeliveryDetailResponse struct {
	ID                    string     `json:"id"`
	OrderID               string     `json:"orderId"`
	RestaurantID          string     `json:"restaurantId"`
	CustomerID            string     `json:"customerId"`
	AgentID               *string    `json:"agentId,omitempty"`
	Status                string     `json:"status"`
	PickupAddress         string     `json:"pickupAddress"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	Fee                   float64    `json:"fee"`
	AssignedAt            *time.Time `json:"assignedAt,omitempty"`
	PickedUpAt            *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt           *time.Time `json:"deliveredAt,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
	CancellationReason    string     `json:"cancellationReason,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// AgentDeliveryResponse is one delivery in an agent's workload.
type AgentDeliveryResponse struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"orderId"`
	Status          string     `json:"status"`
	PickupAddress   string     `json:"pickupAddress"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Fee             float64    `json:"fee"`
	AssignedAt      *time.Time `json:"assignedAt,omitempty"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// DeliveryResponse is an active delivery summary.
type DeliveryResponse struct {
	ID                    string     `json:"id"`
	OrderID               string     `json:"orderId"`
	AgentID               *string    `json:"agentId,omitempty"`
	Status                string     `json:"status"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	Fee                   float64    `json:"fee"`
	EstimatedDeliveryTime *time.Time `json:"estimatedDeliveryTime,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// TrackingEntryResponse is one point of a delivery's tracking history.
type TrackingEntryResponse struct {
	Position  GeoPointResponse `json:"position"`
	Status    string           `json:"status"`
	Remarks   string           `json:"remarks,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// AgentResponse is a delivery agent summary.
type AgentResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	VehicleType     string            `json:"vehicleType"`
	Status          string            `json:"status"`
	Position        *GeoPointResponse `json:"position,omitempty"`
	TotalDeliveries int               `json:"totalDeliveries"`
	Rating          float64           `json:"rating"`
	LastActiveAt    time.Time         `json:"lastActiveAt"`
}
