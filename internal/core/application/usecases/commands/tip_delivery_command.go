package commands

import (
	"errors"
	"fmt"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

var ErrTipDeliveryCommandIsNotConstructed = errors.New(
	"TipDeliveryCommand must be created via NewTipDeliveryCommand constructor",
)

// TipDeliveryCommand represents a customer's one-time tip for a completed
// delivery.
type TipDeliveryCommand struct {
	deliveryID  kernel.UUID
	requesterID kernel.UUID
	amount      float64

	guard kernel.ConstructorGuard
}

// NewTipDeliveryCommand creates a command to tip a delivery's driver.
// The amount must be positive.
func NewTipDeliveryCommand(
	deliveryID, requesterID kernel.UUID,
	amount float64,
) (TipDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return TipDeliveryCommand{}, err
	}
	if amount <= 0 {
		return TipDeliveryCommand{}, errs.NewValueIsInvalidErrorWithCause("tip amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}

	return TipDeliveryCommand{
		deliveryID:  deliveryID,
		requesterID: requesterID,
		amount:      amount,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TipDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTipDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to tip.
func (c TipDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequesterID returns the identifier of the tipping customer.
func (c TipDeliveryCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Amount returns the tip amount.
func (c TipDeliveryCommand) Amount() float64 {
	return c.amount
}
