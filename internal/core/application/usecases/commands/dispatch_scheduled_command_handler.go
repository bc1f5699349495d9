package commands

import (
	"context"
	"time"

	"tradlogistics/internal/core/domain/model/delivery"
)

// DispatchScheduledCommandHandler promotes pending deliveries whose
// scheduled time has arrived into the searching status, so scheduled jobs
// reach drivers without the customer pressing the search button.
//
// Each promotion uses the same conditional update as every other
// transition; a delivery the customer cancelled or searched manually in
// the meantime is simply skipped.
type DispatchScheduledCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewDispatchScheduledCommandHandler creates a handler for scheduled dispatch.
func NewDispatchScheduledCommandHandler(uowFactory DeliveryUoWFactory) DispatchScheduledCommandHandler {
	return DispatchScheduledCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle promotes every due scheduled delivery it can; losing a conditional
// update on one delivery does not abort the batch.
func (h *DispatchScheduledCommandHandler) Handle(ctx context.Context, cmd DispatchScheduledCommand) error {
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
	due, err := deliveryRepo.GetScheduledPendingDue(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, aggregate := range due {
		if err = aggregate.StartSearching(); err != nil {
			continue
		}
		if _, err = deliveryRepo.UpdateWhereStatus(ctx, aggregate, delivery.StatusPending); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
