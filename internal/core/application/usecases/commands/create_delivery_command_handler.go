package commands

import (
	"context"
	"time"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/services"
	"tradlogistics/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// creation: role gating, request validation, PIN generation through the
// aggregate, and the placeholder price quote.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	pricer     services.Pricer
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory, pricer services.Pricer) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the delivery creation command.
// Only customer and company accounts may create deliveries. The request is
// validated against the service type's rules, priced, and persisted in one
// transaction.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	requester, err := uow.AccountRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !requester.Role().CanRequestDeliveries() {
		return errs.NewAccessForbiddenError("only customer and company accounts can request deliveries")
	}

	aggregate, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.CustomerID(), request)
	if err != nil {
		return err
	}

	quote, err := h.pricer.Price(request)
	if err != nil {
		return err
	}
	if err = aggregate.ApplyQuote(quote.Price, quote.Breakdown); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
