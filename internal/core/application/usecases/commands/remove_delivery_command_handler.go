package commands

import (
	"context"
	"time"

	"tradlogistics/internal/pkg/errs"
)

// RemoveDeliveryCommandHandler soft-deletes a delivery. The row is kept
// with a deletion timestamp; every query path excludes it from then on.
type RemoveDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRemoveDeliveryCommandHandler creates a handler for delivery removal.
func NewRemoveDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RemoveDeliveryCommandHandler {
	return RemoveDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command. Only the owning customer may remove,
// and only while the delivery is not terminal. Terminal deliveries stay for
// history.
func (h *RemoveDeliveryCommandHandler) Handle(ctx context.Context, cmd RemoveDeliveryCommand) error {
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
		return errs.NewAccessForbiddenError("only the owning customer can remove the delivery")
	}

	expected := aggregate.Status()
	if err = aggregate.MarkRemoved(time.Now()); err != nil {
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
