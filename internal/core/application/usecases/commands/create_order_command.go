package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOrderItemsAreRequired     = errors.New("at least one item is required")
	ErrItemQuantityIsInvalid     = errors.New("item quantity must be greater than 0")
)

// OrderItemRequest is one requested menu item in a create order command.
// The name and price are resolved from the restaurant directory at
// handling time, not supplied by the caller.
type OrderItemRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a request to place a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, restaurantID,
//	    "221B Baker Street", "ring twice", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	instructions    string
	items           []OrderItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the delivery address and the requested items.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	instructions string,
	items []OrderItemRequest,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the restaurant.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddress returns the drop-off address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Instructions returns the optional delivery notes.
func (c CreateOrderCommand) Instructions() string {
	return c.instructions
}

// Items returns the requested menu items.
func (c CreateOrderCommand) Items() []OrderItemRequest {
	items := make([]OrderItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	c.items = make([]OrderItemRequest, len(items))
	copy(c.items, items)
	return nil
}
