package http

// Request bodies accepted by the REST API. Identifiers arrive as UUID
// strings and are parsed into kernel types before a command is built,
// so malformed input never reaches the application layer.

// CreateOrderItem is a single line of a new order request.
type CreateOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string            `json:"customerId"`
	RestaurantID    string            `json:"restaurantId"`
	DeliveryAddress string            `json:"deliveryAddress"`
	Instructions    string            `json:"instructions"`
	Items           []CreateOrderItem `json:"items"`
}

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/:orderID/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// GeoPointRequest carries a coordinate pair in a request body.
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	OrderID          string           `json:"orderId"`
	RestaurantID     string           `json:"restaurantId"`
	CustomerID       string           `json:"customerId"`
	PickupAddress    string           `json:"pickupAddress"`
	DeliveryAddress  string           `json:"deliveryAddress"`
	PickupPosition   *GeoPointRequest `json:"pickupPosition,omitempty"`
	DeliveryPosition *GeoPointRequest `json:"deliveryPosition,omitempty"`
	Instructions     string           `json:"instructions"`
	Fee              float64          `json:"fee"`
}

// AssignAgentRequest is the body of POST /api/v1/deliveries/:deliveryID/assign.
type AssignAgentRequest struct {
	AgentID string `json:"agentId"`
}

// UpdateDeliveryStatusRequest is the body of POST /api/v1/deliveries/:deliveryID/status.
type UpdateDeliveryStatusRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// UpdateDeliveryLocationRequest is the body of POST /api/v1/deliveries/:deliveryID/location.
type UpdateDeliveryLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Remarks   string  `json:"remarks"`
}

// RegisterAgentRequest is the body of POST /api/v1/agents.
type RegisterAgentRequest struct {
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	VehicleType string           `json:"vehicleType"`
	Position    *GeoPointRequest `json:"position,omitempty"`
}

// UpdateAgentPositionRequest is the body of PUT /api/v1/agents/:agentID/position.
type UpdateAgentPositionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SetAgentStatusRequest is the body of PUT /api/v1/agents/:agentID/status.
type SetAgentStatusRequest struct {
	Status string `json:"status"`
}
