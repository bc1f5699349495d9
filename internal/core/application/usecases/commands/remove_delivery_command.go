package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrRemoveDeliveryCommandIsNotConstructed = errors.New(
	"RemoveDeliveryCommand must be created via NewRemoveDeliveryCommand constructor",
)

// RemoveDeliveryCommand represents a customer's request to soft-delete a
// delivery.
type RemoveDeliveryCommand struct {
	deliveryID  kernel.UUID
	requesterID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewRemoveDeliveryCommand creates a command to remove a delivery.
func NewRemoveDeliveryCommand(deliveryID, requesterID kernel.UUID) (RemoveDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return RemoveDeliveryCommand{}, err
	}

	return RemoveDeliveryCommand{
		deliveryID:  deliveryID,
		requesterID: requesterID,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to remove.
func (c RemoveDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequesterID returns the identifier of the requesting customer.
func (c RemoveDeliveryCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
