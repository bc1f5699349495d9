package commands

import (
	"context"

	"tradlogistics/internal/pkg/errs"
)

// StartSearchingCommandHandler moves a pending delivery into the searching
// status, making it visible to drivers.
type StartSearchingCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartSearchingCommandHandler creates a handler for the search trigger.
func NewStartSearchingCommandHandler(uowFactory DeliveryUoWFactory) StartSearchingCommandHandler {
	return StartSearchingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-searching command. Only the owning customer may
// trigger the search, and only from the pending status. The transition is
// persisted conditionally on the status the aggregate was loaded with.
func (h *StartSearchingCommandHandler) Handle(ctx context.Context, cmd StartSearchingCommand) error {
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
		return errs.NewAccessForbiddenError("only the owning customer can start the driver search")
	}

	expected := aggregate.Status()
	if err = aggregate.StartSearching(); err != nil {
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
