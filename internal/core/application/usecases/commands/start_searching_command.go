package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrStartSearchingCommandIsNotConstructed = errors.New(
	"StartSearchingCommand must be created via NewStartSearchingCommand constructor",
)

// StartSearchingCommand represents a customer's request to open a pending
// delivery for driver acceptance.
type StartSearchingCommand struct {
	deliveryID  kernel.UUID
	requesterID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewStartSearchingCommand creates a command to start the driver search.
func NewStartSearchingCommand(deliveryID, requesterID kernel.UUID) (StartSearchingCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return StartSearchingCommand{}, err
	}

	return StartSearchingCommand{
		deliveryID:  deliveryID,
		requesterID: requesterID,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSearchingCommand) Validate() error {
	return c.guard.Validate(ErrStartSearchingCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to open for search.
func (c StartSearchingCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequesterID returns the identifier of the requesting customer.
func (c StartSearchingCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
