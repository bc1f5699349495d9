package commands

import (
	"context"
	"time"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/services"
	"tradlogistics/internal/pkg/errs"
)

// EditDeliveryCommandHandler replaces a pending delivery's request fields
// and re-prices it, since an edit may change what the delivery costs.
type EditDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	pricer     services.Pricer
}

// NewEditDeliveryCommandHandler creates a handler for delivery edits.
func NewEditDeliveryCommandHandler(uowFactory DeliveryUoWFactory, pricer services.Pricer) EditDeliveryCommandHandler {
	return EditDeliveryCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the edit command. Only the owning customer may edit, and
// only while the delivery is pending. The write is conditional on the
// pending status so an edit cannot land on a delivery a search already
// opened to drivers.
func (h *EditDeliveryCommandHandler) Handle(ctx context.Context, cmd EditDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	request, err := delivery.NewRequest(cmd.Params(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
		return errs.NewAccessForbiddenError("only the owning customer can edit the delivery")
	}

	expected := aggregate.Status()
	if err = aggregate.Edit(request); err != nil {
		return err
	}

	quote, err := h.pricer.Price(request)
	if err != nil {
		return err
	}
	if err = aggregate.ApplyQuote(quote.Price, quote.Breakdown); err != nil {
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
