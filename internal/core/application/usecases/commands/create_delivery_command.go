package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrPickupAddressIsRequired = errors.New("pickup address is required")
)

// CreateDeliveryCommand represents a request to create a delivery for a
// confirmed order. It is produced either by the ORDER_CONFIRMED consumer
// or by a direct API call.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID       kernel.UUID
	orderID          kernel.UUID
	restaurantID     kernel.UUID
	customerID       kernel.UUID
	pickupAddress    string
	deliveryAddress  string
	pickupPosition   *kernel.GeoPoint
	deliveryPosition *kernel.GeoPoint
	instructions     string
	fee              decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to create a delivery.
// Positions are optional; addresses are not.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	pickupPosition *kernel.GeoPoint,
	deliveryPosition *kernel.GeoPoint,
	instructions string,
	fee decimal.Decimal,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		pickupPosition:   pickupPosition,
		deliveryPosition: deliveryPosition,
		instructions:     instructions,
		fee:              fee,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setCustomerID(customerID),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the fulfilled order.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the pickup restaurant.
func (c CreateDeliveryCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// CustomerID returns the receiving customer.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns the restaurant pickup address.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the customer drop-off address.
func (c CreateDeliveryCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PickupPosition returns the optional pickup coordinates.
func (c CreateDeliveryCommand) PickupPosition() *kernel.GeoPoint {
	return c.pickupPosition
}

// DeliveryPosition returns the optional drop-off coordinates.
func (c CreateDeliveryCommand) DeliveryPosition() *kernel.GeoPoint {
	return c.deliveryPosition
}

// Instructions returns the optional delivery notes.
func (c CreateDeliveryCommand) Instructions() string {
	return c.instructions
}

// Fee returns the delivery fee.
func (c CreateDeliveryCommand) Fee() decimal.Decimal {
	return c.fee
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateDeliveryCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}
	c.pickupAddress = pickupAddress
	return nil
}

func (c *CreateDeliveryCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = deliveryAddress
	return nil
}
