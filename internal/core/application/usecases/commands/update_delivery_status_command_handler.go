package commands

import (
	"context"

	"tradlogistics/internal/core/domain/model/delivery"
)

// UpdateDeliveryStatusCommandHandler applies driver-initiated status
// advances: picked up, in transit, delivered, or a driver-side cancel.
//
// Completing a delivery also bumps the driver's completed-deliveries
// counter in the same transaction.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status advances.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update. The caller must be the assigned
// driver and the transition must be in the allow-table. The write is
// conditional on the status the aggregate was loaded with, so a racing
// cancel and advance cannot both survive.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	expected := aggregate.Status()
	if err = aggregate.AdvanceStatus(cmd.DriverID(), cmd.Next()); err != nil {
		return err
	}

	updated, err := deliveryRepo.UpdateWhereStatus(ctx, aggregate, expected)
	if err != nil {
		return err
	}
	if !updated {
		return ErrDeliveryModifiedConcurrently
	}

	if cmd.Next() == delivery.StatusDelivered {
		accountRepo := uow.AccountRepository()
		profile, err := accountRepo.GetDriverProfile(ctx, cmd.DriverID())
		if err != nil {
			return err
		}
		profile.MarkDeliveryCompleted()
		if err = accountRepo.UpdateDriverProfile(ctx, profile); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
