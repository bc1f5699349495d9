package commands

import (
	"context"

	"tradlogistics/internal/pkg/errs"
)

// CancelDeliveryCommandHandler cancels a delivery on the customer's behalf.
//
// Cancellation races against driver transitions on the same delivery; the
// conditional update keyed on the loaded status guarantees at most one of
// the two racing writes survives.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for cancellations.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command. Only the owning customer may cancel,
// and only while the delivery is not terminal. A second cancel fails because
// the status is already cancelled.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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
	if !aggregate.IsOwnedBy(cmd.RequesterID()) {
		return errs.NewAccessForbiddenError("only the owning customer can cancel the delivery")
	}

	expected := aggregate.Status()
	if err = aggregate.Cancel(); err != nil {
		return err
	}

	updated, err := deliveryRepo.UpdateWhereStatus(ctx, aggregate, expected)
	if err != nil {
		return err
	}
	if !updated {
		return ErrDeliveryModifiedConcurrently
	}

	return uow.Commit(ctx)
}
