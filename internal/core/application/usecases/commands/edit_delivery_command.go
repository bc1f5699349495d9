package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrEditDeliveryCommandIsNotConstructed = errors.New(
	"EditDeliveryCommand must be created via NewEditDeliveryCommand constructor",
)

// EditDeliveryCommand represents a customer's request to change a pending
// delivery's details. The full replacement request is carried raw and
// validated by the handler, the same way creation validates it.
type EditDeliveryCommand struct {
	deliveryID  kernel.UUID
	requesterID kernel.UUID
	params      delivery.RequestParams

	guard kernel.ConstructorGuard
}

// NewEditDeliveryCommand creates a command to edit a pending delivery.
func NewEditDeliveryCommand(
	deliveryID, requesterID kernel.UUID,
	params delivery.RequestParams,
) (EditDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return EditDeliveryCommand{}, err
	}

	return EditDeliveryCommand{
		deliveryID:  deliveryID,
		requesterID: requesterID,
		params:      params,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrEditDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to edit.
func (c EditDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequesterID returns the identifier of the requesting customer.
func (c EditDeliveryCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Params returns the replacement request parameters.
func (c EditDeliveryCommand) Params() delivery.RequestParams {
	return c.params
}
