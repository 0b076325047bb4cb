package commands

import (
	"context"
	"time"
)

// UpdateDeliveryLocationCommandHandler appends a position fix to a
// delivery's tracking log. The delivery status, timestamps and agent are
// untouched, and no event is published.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryLocationCommandHandler creates a handler for tracking
// updates.
func NewUpdateDeliveryLocationCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update command.
func (h UpdateDeliveryLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.AppendTracking(cmd.Position(), cmd.Remarks(), time.Now().UTC()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
