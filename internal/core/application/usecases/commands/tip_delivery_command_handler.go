package commands

import (
	"context"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

// TipDeliveryCommandHandler records a customer's tip for a delivered
// delivery and credits the driver's balance in the same transaction.
// Per-delivery uniqueness is enforced the same way as ratings.
type TipDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewTipDeliveryCommandHandler creates a handler for delivery tips.
func NewTipDeliveryCommandHandler(uowFactory UoWFactory) TipDeliveryCommandHandler {
	return TipDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tip command. The requester must own the delivery,
// the delivery must be delivered with a driver, and no prior tip may exist.
func (h *TipDeliveryCommandHandler) Handle(ctx context.Context, cmd TipDeliveryCommand) error {
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
		return errs.NewAccessForbiddenError("only the owning customer can tip the delivery")
	}

	tip, err := delivery.NewTip(kernel.NewUUID(), aggregate, cmd.Amount())
	if err != nil {
		return err
	}

	if err = uow.FeedbackRepository().AddTip(ctx, tip); err != nil {
		return err
	}

	accountRepo := uow.AccountRepository()
	profile, err := accountRepo.GetDriverProfile(ctx, tip.DriverID())
	if err != nil {
		return err
	}
	if err = profile.CreditTip(cmd.Amount()); err != nil {
		return err
	}
	if err = accountRepo.UpdateDriverProfile(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
