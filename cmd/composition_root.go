package cmd

import (
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/directory"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/rabbitmq"
	"fooddelivery/internal/core/application/eventhandlers"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompositionRoot constructs every dependency explicitly. No globals,
// no service locator: each Create* method wires one use case.
type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	publisher   ports.EventPublisher
	restaurants ports.RestaurantDirectory
	users       ports.UserDirectory
	logger      *slog.Logger

	fallbackPickup kernel.GeoPoint
}

// NewCompositionRoot assembles the root from the loaded configuration and
// the already-connected infrastructure clients.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	amqpClient *rabbitmq.Client,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	fallbackPickup, err := kernel.NewGeoPoint(
		config.FallbackPickupLatitude, config.FallbackPickupLongitude)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:         config,
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:      rabbitmq.NewEventPublisher(amqpClient, logger),
		restaurants:    directory.NewRestaurantClient(config.RestaurantServiceURL),
		users:          directory.NewUserClient(config.UserServiceURL),
		logger:         logger,
		fallbackPickup: fallbackPickup,
	}, nil
}

func (c *CompositionRoot) assignmentSettings() commands.AssignmentSettings {
	return commands.AssignmentSettings{
		SLA:             c.config.DeliverySLA,
		DefaultPosition: c.fallbackPickup,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) agentUoWFactory() commands.AgentUoWFactory {
	return FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.restaurants, c.users, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateApplyPaymentOutcomeCommandHandler() commands.ApplyPaymentOutcomeCommandHandler {
	return commands.NewApplyPaymentOutcomeCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(
		c.deliveryUoWFactory(), c.publisher, c.assignmentSettings())
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	return commands.NewAssignAgentCommandHandler(
		c.deliveryUoWFactory(), c.publisher, c.assignmentSettings())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(
		c.deliveryUoWFactory(), c.publisher, c.assignmentSettings())
}

func (c *CompositionRoot) CreateUpdateDeliveryLocationCommandHandler() commands.UpdateDeliveryLocationCommandHandler {
	return commands.NewUpdateDeliveryLocationCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	return commands.NewRegisterAgentCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateSetAgentStatusCommandHandler() commands.SetAgentStatusCommandHandler {
	return commands.NewSetAgentStatusCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAgentPositionCommandHandler() commands.UpdateAgentPositionCommandHandler {
	return commands.NewUpdateAgentPositionCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateMarkStaleAgentsOfflineCommandHandler() commands.MarkStaleAgentsOfflineCommandHandler {
	return commands.NewMarkStaleAgentsOfflineCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentDeliveriesQueryHandler() queries.GetAgentDeliveriesQueryHandler {
	return queries.NewGetAgentDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryTrackingQueryHandler() queries.GetDeliveryTrackingQueryHandler {
	return queries.NewGetDeliveryTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllAgentsQueryHandler() queries.GetAllAgentsQueryHandler {
	return queries.NewGetAllAgentsQueryHandler(c.gormDB)
}

// CreateOrderEventsHandler wires the delivery-side reaction to order
// lifecycle events.
func (c *CompositionRoot) CreateOrderEventsHandler() eventhandlers.OrderEventsHandler {
	defaults := eventhandlers.DeliveryDefaults{
		PickupAddress:  c.config.FallbackPickupAddress,
		PickupPosition: c.fallbackPickup,
		Fee:            decimal.NewFromFloat(c.config.DefaultDeliveryFee),
	}

	return eventhandlers.NewOrderEventsHandler(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.deliveryUoWFactory(),
		defaults,
		c.logger,
	)
}

// CreateDeliveryEventsHandler wires the order-side reaction to delivery
// progress events.
func (c *CompositionRoot) CreateDeliveryEventsHandler() eventhandlers.DeliveryEventsHandler {
	return eventhandlers.NewDeliveryEventsHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

// CreatePaymentEventsHandler wires the order-side reaction to payment
// outcome events.
func (c *CompositionRoot) CreatePaymentEventsHandler() eventhandlers.PaymentEventsHandler {
	return eventhandlers.NewPaymentEventsHandler(
		c.CreateApplyPaymentOutcomeCommandHandler(), c.logger)
}

// CreateHTTPServer builds the echo handler set over all use cases.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateAssignAgentCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateUpdateDeliveryLocationCommandHandler(),
		c.CreateRegisterAgentCommandHandler(),
		c.CreateUpdateAgentPositionCommandHandler(),
		c.CreateSetAgentStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateGetActiveDeliveriesQueryHandler(),
		c.CreateGetAgentDeliveriesQueryHandler(),
		c.CreateGetDeliveryTrackingQueryHandler(),
		c.CreateGetAllAgentsQueryHandler(),
	)
}

// CreateJobManager builds the background job set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMarkStaleAgentsOfflineCommandHandler(),
		c.config.AgentLivenessWindow,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}
