package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents a customer's request to cancel a delivery.
type CancelDeliveryCommand struct {
	deliveryID  kernel.UUID
	requesterID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewCancelDeliveryCommand creates a command to cancel a delivery.
func NewCancelDeliveryCommand(deliveryID, requesterID kernel.UUID) (CancelDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return CancelDeliveryCommand{
		deliveryID:  deliveryID,
		requesterID: requesterID,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to cancel.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequesterID returns the identifier of the requesting customer.
func (c CancelDeliveryCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
