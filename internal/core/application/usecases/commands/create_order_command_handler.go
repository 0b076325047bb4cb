package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var (
	ErrRestaurantInactive  = errors.New("restaurant is not accepting orders")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)

// CreateOrderCommandHandler handles the business logic for placing an
// order: it verifies the customer and restaurant with their owning
// services, snapshots menu item names and prices into line items, persists
// the order in PENDING status and publishes an ORDER_CREATED event.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	restaurants ports.RestaurantDirectory
	users       ports.UserDirectory
	publisher   ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantDirectory,
	users ports.UserDirectory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		users:       users,
		publisher:   publisher,
	}
}

// Handle processes the order placement command.
//
// Collaborator checks run before the transaction: the customer must exist,
// the restaurant must be active and every requested menu item must be
// available. The order total is computed from the snapshotted prices.
// The ORDER_CREATED event is published after a successful commit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	exists, err := h.users.UserExists(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("customer", cmd.CustomerID())
	}

	restaurant, err := h.restaurants.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.Active {
		return ErrRestaurantInactive
	}

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		menuItem, err := h.restaurants.GetMenuItem(ctx, requested.MenuItemID)
		if err != nil {
			return err
		}
		if !menuItem.Available {
			return fmt.Errorf("%w: %s", ErrMenuItemUnavailable, menuItem.Name)
		}

		item, err := order.NewLineItem(menuItem.ID, menuItem.Name, requested.Quantity, menuItem.Price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(),
		cmd.DeliveryAddress(), cmd.Instructions(), items, now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.PublishOrderEvent(ctx, makeOrderEvent(aggregate, contracts.EventOrderCreated, now))
}
