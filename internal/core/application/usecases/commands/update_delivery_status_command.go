package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents an assigned driver's request to
// advance a delivery to the next lifecycle status.
type UpdateDeliveryStatusCommand struct {
	deliveryID kernel.UUID
	driverID   kernel.UUID
	next       delivery.Status

	guard kernel.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to advance a delivery's status.
// The target status is parsed here; whether the transition is legal from the
// current status is the aggregate's decision.
func NewUpdateDeliveryStatusCommand(
	deliveryID, driverID kernel.UUID,
	next string,
) (UpdateDeliveryStatusCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		driverID.Validate(),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	status, err := delivery.StatusFromString(next)
	if err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		deliveryID: deliveryID,
		driverID:   driverID,
		next:       status,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to advance.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the identifier of the requesting driver.
func (c UpdateDeliveryStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Next returns the requested target status.
func (c UpdateDeliveryStatusCommand) Next() delivery.Status {
	return c.next
}
