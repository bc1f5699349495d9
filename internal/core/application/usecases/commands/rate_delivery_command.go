package commands

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

var ErrRateDeliveryCommandIsNotConstructed = errors.New(
	"RateDeliveryCommand must be created via NewRateDeliveryCommand constructor",
)

// RateDeliveryCommand represents a customer's one-time rating of a
// completed delivery.
type RateDeliveryCommand struct {
	deliveryID  kernel.UUID
	requesterID kernel.UUID
	value       int
	review      string

	guard kernel.ConstructorGuard
}

// NewRateDeliveryCommand creates a command to rate a delivery.
// The value must be between 1 and 5 inclusive.
func NewRateDeliveryCommand(
	deliveryID, requesterID kernel.UUID,
	value int,
	review string,
) (RateDeliveryCommand, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return RateDeliveryCommand{}, err
	}
	if value < 1 || value > 5 {
		return RateDeliveryCommand{}, errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}

	return RateDeliveryCommand{
		deliveryID:  deliveryID,
		requesterID: requesterID,
		value:       value,
		review:      review,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to rate.
func (c RateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequesterID returns the identifier of the rating customer.
func (c RateDeliveryCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Value returns the rating score.
func (c RateDeliveryCommand) Value() int {
	return c.value
}

// Review returns the optional review text.
func (c RateDeliveryCommand) Review() string {
	return c.review
}
