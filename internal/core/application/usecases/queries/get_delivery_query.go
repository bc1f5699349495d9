package queries

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves a single delivery for a requesting principal.
// Access is limited to the owning customer and the assigned driver; the
// verification PIN is disclosed only to the owner.
type GetDeliveryQuery struct {
	deliveryID  kernel.UUID
	requesterID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for one delivery's details.
func NewGetDeliveryQuery(deliveryID, requesterID kernel.UUID) (GetDeliveryQuery, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID:  deliveryID,
		requesterID: requesterID,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the requested delivery.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// RequesterID returns the identifier of the requesting principal.
func (q GetDeliveryQuery) RequesterID() kernel.UUID {
	return q.requesterID
}
