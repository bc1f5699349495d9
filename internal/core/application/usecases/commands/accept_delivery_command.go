package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a driver's attempt to win the assignment
// of a searching delivery.
type AcceptDeliveryCommand struct {
	deliveryID kernel.UUID
	driverID   kernel.UUID

	guard kernel.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a driver to accept a delivery.
func NewAcceptDeliveryCommand(deliveryID, driverID kernel.UUID) (AcceptDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		driverID.Validate(),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return AcceptDeliveryCommand{
		deliveryID: deliveryID,
		driverID:   driverID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being accepted.
func (c AcceptDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the identifier of the accepting driver.
func (c AcceptDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}
