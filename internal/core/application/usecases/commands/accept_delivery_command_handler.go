package commands

import (
	"context"

	"tradlogistics/internal/core/domain/model/account"
	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/pkg/errs"
)

// AcceptDeliveryCommandHandler performs the atomic single-winner acceptance
// of a searching delivery.
//
// At most one driver wins a given delivery, no matter how many accept
// concurrently. The guarantee rests entirely on the conditional update: the
// assignment is written only where the stored row still holds the searching
// status, so the database serializes racing acceptors and all but the first
// committer observe a failed match. There is deliberately no read-then-write
// fallback path.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory UoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command. The caller must hold the driver role.
// Losing the race returns ErrDeliveryNoLongerAvailable so clients can
// refresh the available list instead of retrying blindly.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	requester, err := uow.AccountRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if requester.Role() != account.RoleDriver {
		return errs.NewAccessForbiddenError("only drivers can accept deliveries")
	}

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDriver(cmd.DriverID()); err != nil {
		// Already past searching in the snapshot we read.
		return ErrDeliveryNoLongerAvailable
	}

	won, err := deliveryRepo.UpdateWhereStatus(ctx, aggregate, delivery.StatusSearching)
	if err != nil {
		return err
	}
	if !won {
		return ErrDeliveryNoLongerAvailable
	}

	return uow.Commit(ctx)
}
