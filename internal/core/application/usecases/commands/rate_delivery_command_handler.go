package commands

import (
	"context"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

// RateDeliveryCommandHandler records a customer's rating of a delivered
// delivery and folds it into the driver's rating aggregates, all in one
// transaction.
//
// Uniqueness per delivery is enforced by the store's constraint on the
// delivery reference, not by an existence check here; a duplicate surfaces
// as ObjectAlreadyExistsError even when two submissions race.
type RateDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewRateDeliveryCommandHandler creates a handler for delivery ratings.
func NewRateDeliveryCommandHandler(uowFactory UoWFactory) RateDeliveryCommandHandler {
	return RateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rate command. The requester must own the delivery,
// the delivery must be delivered with a driver, and no prior rating may
// exist. The driver reference is snapshotted from the delivery.
func (h *RateDeliveryCommandHandler) Handle(ctx context.Context, cmd RateDeliveryCommand) error {
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

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if !aggregate.IsOwnedBy(cmd.RequesterID()) {
		return errs.NewAccessForbiddenError("only the owning customer can rate the delivery")
	}

	rating, err := delivery.NewRating(kernel.NewUUID(), aggregate, cmd.Value(), cmd.Review())
	if err != nil {
		return err
	}

	if err = uow.FeedbackRepository().AddRating(ctx, rating); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	profile, err := accountRepo.GetDriverProfile(ctx, rating.DriverID())
	if err != nil {
		return err
	}
	if err = profile.RecordRating(cmd.Value()); err != nil {
		return err
	}
	if err = accountRepo.UpdateDriverProfile(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
