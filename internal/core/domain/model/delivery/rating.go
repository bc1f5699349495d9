package delivery

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

// ErrRatingIsNotConstructed is returned when a Rating instance was not
// created through NewRating or RestoreRating.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is the customer's one-time score of a completed delivery.
// At most one rating exists per delivery; the store enforces uniqueness
// with a constraint on the delivery reference.
//
// The driver reference is snapshotted from the delivery at creation time
// so historical attribution never depends on a later lookup.
type Rating struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	customerID kernel.UUID
	driverID   kernel.UUID
	value      int
	review     string

	guard kernel.ConstructorGuard
}

// NewRating creates a rating for a delivered delivery.
// The value must be between 1 and 5 inclusive; the review is optional.
func NewRating(id kernel.UUID, d *Delivery, value int, review string) (*Rating, error) {
	if err := errors.Join(id.Validate(), d.Validate()); err != nil {
		return nil, err
	}
	if !d.CanBeRated() {
		return nil, errs.NewValueIsInvalidError("only delivered deliveries can be rated")
	}
	if value < 1 || value > 5 {
		return nil, errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}

	return &Rating{
		id:         id,
		deliveryID: d.ID(),
		customerID: d.CustomerID(),
		driverID:   *d.DriverID(),
		value:      value,
		review:     review,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// RestoreRating reconstructs a Rating from persistence.
func RestoreRating(id, deliveryID, customerID, driverID kernel.UUID, value int, review string) (*Rating, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		customerID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}
	if value < 1 || value > 5 {
		return nil, errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}

	return &Rating{
		id:         id,
		deliveryID: deliveryID,
		customerID: customerID,
		driverID:   driverID,
		value:      value,
		review:     review,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Rating was properly constructed.
func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// DeliveryID returns the rated delivery's identifier.
func (r *Rating) DeliveryID() kernel.UUID {
	return r.deliveryID
}

// CustomerID returns the rating customer's identifier.
func (r *Rating) CustomerID() kernel.UUID {
	return r.customerID
}

// DriverID returns the rated driver's identifier, snapshotted at creation.
func (r *Rating) DriverID() kernel.UUID {
	return r.driverID
}

// Value returns the score, 1 to 5.
func (r *Rating) Value() int {
	return r.value
}

// Review returns the optional free-text review.
func (r *Rating) Review() string {
	return r.review
}
