package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a field-reported delivery status
// change, with optional remarks (recorded as the cancellation reason on
// CANCELLED and FAILED).
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	newStatus  delivery.Status
	remarks    string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to record a delivery
// status update.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	newStatus delivery.Status,
	remarks string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery to update.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// NewStatus returns the reported status.
func (c UpdateDeliveryStatusCommand) NewStatus() delivery.Status {
	return c.newStatus
}

// Remarks returns the optional free-form note.
func (c UpdateDeliveryStatusCommand) Remarks() string {
	return c.remarks
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setNewStatus(newStatus delivery.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
