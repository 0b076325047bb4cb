// Package http exposes the REST API of the fulfillment service. Handlers
// translate JSON requests into application commands and queries and map
// the outcome back to status codes; no business rules live here.
package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler            commands.CreateOrderCommandHandler
	cancelOrderHandler            commands.CancelOrderCommandHandler
	changeOrderStatusHandler      commands.ChangeOrderStatusCommandHandler
	createDeliveryHandler         commands.CreateDeliveryCommandHandler
	assignAgentHandler            commands.AssignAgentCommandHandler
	updateDeliveryStatusHandler   commands.UpdateDeliveryStatusCommandHandler
	updateDeliveryLocationHandler commands.UpdateDeliveryLocationCommandHandler
	registerAgentHandler          commands.RegisterAgentCommandHandler
	updateAgentPositionHandler    commands.UpdateAgentPositionCommandHandler
	setAgentStatusHandler         commands.SetAgentStatusCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getDeliveryHandler         queries.GetDeliveryQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	getAgentDeliveriesHandler  queries.GetAgentDeliveriesQueryHandler
	getDeliveryTrackingHandler queries.GetDeliveryTrackingQueryHandler
	getAllAgentsHandler        queries.GetAllAgentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	updateDeliveryLocationHandler commands.UpdateDeliveryLocationCommandHandler,
	registerAgentHandler commands.RegisterAgentCommandHandler,
	updateAgentPositionHandler commands.UpdateAgentPositionCommandHandler,
	setAgentStatusHandler commands.SetAgentStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	getAgentDeliveriesHandler queries.GetAgentDeliveriesQueryHandler,
	getDeliveryTrackingHandler queries.GetDeliveryTrackingQueryHandler,
	getAllAgentsHandler queries.GetAllAgentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		cancelOrderHandler:            cancelOrderHandler,
		changeOrderStatusHandler:      changeOrderStatusHandler,
		createDeliveryHandler:         createDeliveryHandler,
		assignAgentHandler:            assignAgentHandler,
		updateDeliveryStatusHandler:   updateDeliveryStatusHandler,
		updateDeliveryLocationHandler: updateDeliveryLocationHandler,
		registerAgentHandler:          registerAgentHandler,
		updateAgentPositionHandler:    updateAgentPositionHandler,
		setAgentStatusHandler:         setAgentStatusHandler,
		getOrderHandler:               getOrderHandler,
		getCustomerOrdersHandler:      getCustomerOrdersHandler,
		getDeliveryHandler:            getDeliveryHandler,
		getActiveDeliveriesHandler:    getActiveDeliveriesHandler,
		getAgentDeliveriesHandler:     getAgentDeliveriesHandler,
		getDeliveryTrackingHandler:    getDeliveryTrackingHandler,
		getAllAgentsHandler:           getAllAgentsHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.GET("/orders/:orderID/delivery", s.GetOrderDelivery)
	api.GET("/customers/:customerID/orders", s.GetCustomerOrders)

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.GET("/deliveries/:deliveryID", s.GetDelivery)
	api.POST("/deliveries/:deliveryID/assign", s.AssignAgent)
	api.POST("/deliveries/:deliveryID/status", s.UpdateDeliveryStatus)
	api.POST("/deliveries/:deliveryID/location", s.UpdateDeliveryLocation)
	api.GET("/deliveries/:deliveryID/tracking", s.GetDeliveryTracking)

	api.POST("/agents", s.RegisterAgent)
	api.GET("/agents", s.GetAllAgents)
	api.GET("/agents/:agentID/deliveries", s.GetAgentDeliveries)
	api.PUT("/agents/:agentID/position", s.UpdateAgentPosition)
	api.PUT("/agents/:agentID/status", s.SetAgentStatus)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	items := make([]commands.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, itemErr := kernel.UUIDFromString(item.MenuItemID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid menu item id: "+itemErr.Error())
		}
		items = append(items, commands.OrderItemRequest{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, restaurantID, req.DeliveryAddress, req.Instructions, items)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return failure(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	items := make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.InexactFloat64(),
			Subtotal:   item.Subtotal.InexactFloat64(),
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetailResponse{
		ID:                  result.ID.String(),
		CustomerID:          result.CustomerID.String(),
		RestaurantID:        result.RestaurantID.String(),
		Status:              result.Status,
		PaymentStatus:       result.PaymentStatus,
		TotalAmount:         result.TotalAmount.InexactFloat64(),
		DeliveryAddress:     result.DeliveryAddress,
		SpecialInstructions: result.SpecialInstructions,
		Items:               items,
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid order status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/:customerID/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return failure(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:            o.ID.String(),
			RestaurantID:  o.RestaurantID.String(),
			Status:        o.Status,
			PaymentStatus: o.PaymentStatus,
			TotalAmount:   o.TotalAmount.InexactFloat64(),
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	pickupPosition, err := geoPointFromRequest(req.PickupPosition)
	if err != nil {
		return badRequest(ctx, "Invalid pickup position: "+err.Error())
	}

	deliveryPosition, err := geoPointFromRequest(req.DeliveryPosition)
	if err != nil {
		return badRequest(ctx, "Invalid delivery position: "+err.Error())
	}

	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, orderID, restaurantID, customerID,
		req.PickupAddress, req.DeliveryAddress,
		pickupPosition, deliveryPosition,
		req.Instructions, decimal.NewFromFloat(req.Fee))
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		var agentID *string
		if d.AgentID != nil {
			id := d.AgentID.String()
			agentID = &id
		}

		response[i] = DeliveryResponse{
			ID:                    d.ID.String(),
			OrderID:               d.OrderID.String(),
			AgentID:               agentID,
			Status:                d.Status,
			DeliveryAddress:       d.DeliveryAddress,
			Fee:                   d.Fee.InexactFloat64(),
			EstimatedDeliveryTime: d.EstimatedDeliveryTime,
			CreatedAt:             d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /api/v1/deliveries/:deliveryID.
func (s *Server) GetDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return failure(ctx, err)
	}

	return s.renderDelivery(ctx, query)
}

// GetOrderDelivery handles GET /api/v1/orders/:orderID/delivery.
func (s *Server) GetOrderDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetDeliveryByOrderIDQuery(orderID)
	if err != nil {
		return failure(ctx, err)
	}

	return s.renderDelivery(ctx, query)
}

func (s *Server) renderDelivery(ctx echo.Context, query queries.GetDeliveryQuery) error {
	result, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	var agentID *string
	if result.AgentID != nil {
		id := result.AgentID.String()
		agentID = &id
	}

	return ctx.JSON(http.StatusOK, DeliveryDetailResponse{
		ID:                    result.ID.String(),
		OrderID:               result.OrderID.String(),
		RestaurantID:          result.RestaurantID.String(),
		CustomerID:            result.CustomerID.String(),
		AgentID:               agentID,
		Status:                result.Status,
		PickupAddress:         result.PickupAddress,
		DeliveryAddress:       result.DeliveryAddress,
		Fee:                   result.Fee.InexactFloat64(),
		AssignedAt:            result.AssignedAt,
		PickedUpAt:            result.PickedUpAt,
		DeliveredAt:           result.DeliveredAt,
		EstimatedDeliveryTime: result.EstimatedDeliveryTime,
		CancellationReason:    result.CancellationReason,
		CreatedAt:             result.CreatedAt,
		UpdatedAt:             result.UpdatedAt,
	})
}

// AssignAgent handles POST /api/v1/deliveries/:deliveryID/assign.
func (s *Server) AssignAgent(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req AssignAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	cmd, err := commands.NewAssignAgentCommand(deliveryID, agentID)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:deliveryID/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req UpdateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid delivery status: "+err.Error())
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, newStatus, req.Remarks)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryLocation handles POST /api/v1/deliveries/:deliveryID/location.
func (s *Server) UpdateDeliveryLocation(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var req UpdateDeliveryLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	position, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid position: "+err.Error())
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(deliveryID, position, req.Remarks)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.updateDeliveryLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryTracking handles GET /api/v1/deliveries/:deliveryID/tracking.
func (s *Server) GetDeliveryTracking(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	query, err := queries.NewGetDeliveryTrackingQuery(deliveryID)
	if err != nil {
		return failure(ctx, err)
	}

	entries, err := s.getDeliveryTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	response := make([]TrackingEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = TrackingEntryResponse{
			Position: GeoPointResponse{
				Latitude:  entry.Position.Latitude(),
				Longitude: entry.Position.Longitude(),
			},
			Status:    entry.Status,
			Remarks:   entry.Remarks,
			Timestamp: entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterAgent handles POST /api/v1/agents.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	var req RegisterAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleType, err := agent.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle type: "+err.Error())
	}

	position, err := geoPointFromRequest(req.Position)
	if err != nil {
		return badRequest(ctx, "Invalid position: "+err.Error())
	}

	agentID := kernel.NewUUID()

	cmd, err := commands.NewRegisterAgentCommand(agentID, req.Name, req.Phone, vehicleType, position)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.registerAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: agentID.String()})
}

// GetAllAgents handles GET /api/v1/agents.
func (s *Server) GetAllAgents(ctx echo.Context) error {
	query := queries.NewGetAllAgentsQuery()

	agents, err := s.getAllAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	response := make([]AgentResponse, len(agents))
	for i, a := range agents {
		var position *GeoPointResponse
		if a.Position != nil {
			position = &GeoPointResponse{
				Latitude:  a.Position.Latitude(),
				Longitude: a.Position.Longitude(),
			}
		}

		response[i] = AgentResponse{
			ID:              a.ID.String(),
			Name:            a.Name,
			VehicleType:     a.VehicleType,
			Status:          a.Status,
			Position:        position,
			TotalDeliveries: a.TotalDeliveries,
			Rating:          a.Rating,
			LastActiveAt:    a.LastActiveAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentDeliveries handles GET /api/v1/agents/:agentID/deliveries.
func (s *Server) GetAgentDeliveries(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	query, err := queries.NewGetAgentDeliveriesQuery(agentID)
	if err != nil {
		return failure(ctx, err)
	}

	deliveries, err := s.getAgentDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err)
	}

	response := make([]AgentDeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = AgentDeliveryResponse{
			ID:              d.ID.String(),
			OrderID:         d.OrderID.String(),
			Status:          d.Status,
			PickupAddress:   d.PickupAddress,
			DeliveryAddress: d.DeliveryAddress,
			Fee:             d.Fee.InexactFloat64(),
			AssignedAt:      d.AssignedAt,
			DeliveredAt:     d.DeliveredAt,
			CreatedAt:       d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateAgentPosition handles PUT /api/v1/agents/:agentID/position.
func (s *Server) UpdateAgentPosition(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	var req UpdateAgentPositionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	position, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid position: "+err.Error())
	}

	cmd, err := commands.NewUpdateAgentPositionCommand(agentID, position)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.updateAgentPositionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetAgentStatus handles PUT /api/v1/agents/:agentID/status.
func (s *Server) SetAgentStatus(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	var req SetAgentStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := agent.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid agent status: "+err.Error())
	}

	cmd, err := commands.NewSetAgentStatusCommand(agentID, status)
	if err != nil {
		return failure(ctx, err)
	}

	if err := s.setAgentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return failure(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func geoPointFromRequest(req *GeoPointRequest) (*kernel.GeoPoint, error) {
	if req == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	return &point, nil
}
