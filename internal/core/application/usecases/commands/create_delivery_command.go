package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a customer's request to create a new
// delivery. The raw request parameters are carried as-is; service-type
// validation happens in the handler so every missing field is reported in
// one response.
type CreateDeliveryCommand struct {
	deliveryID kernel.UUID
	customerID kernel.UUID
	params     delivery.RequestParams

	guard kernel.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	customerID kernel.UUID,
	params delivery.RequestParams,
) (CreateDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		customerID.Validate(),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		deliveryID: deliveryID,
		customerID: customerID,
		params:     params,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier assigned to the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CustomerID returns the identifier of the requesting customer.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Params returns the raw request parameters.
func (c CreateDeliveryCommand) Params() delivery.RequestParams {
	return c.params
}
