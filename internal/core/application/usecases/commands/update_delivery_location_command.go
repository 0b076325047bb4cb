package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand represents a position-only tracking
// update: a new entry in the audit trail without any status change.
type UpdateDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	position   kernel.GeoPoint
	remarks    string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryLocationCommand creates a command to record a position fix.
func NewUpdateDeliveryLocationCommand(
	deliveryID kernel.UUID,
	position kernel.GeoPoint,
	remarks string,
) (UpdateDeliveryLocationCommand, error) {
	cmd := UpdateDeliveryLocationCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPosition(position),
	); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

// DeliveryID returns the delivery being tracked.
func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Position returns the reported position fix.
func (c UpdateDeliveryLocationCommand) Position() kernel.GeoPoint {
	return c.position
}

// Remarks returns the optional free-form note.
func (c UpdateDeliveryLocationCommand) Remarks() string {
	return c.remarks
}

func (c *UpdateDeliveryLocationCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryLocationCommand) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	c.position = position
	return nil
}
