package delivery

import (
	"errors"
	"fmt"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

// ErrTipIsNotConstructed is returned when a Tip instance was not created
// through NewTip or RestoreTip.
var ErrTipIsNotConstructed = errors.New("Tip must be created via NewTip constructor")

// Tip is the customer's one-time gratuity for a completed delivery.
// At most one tip exists per delivery, enforced the same way as Rating.
type Tip struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	customerID kernel.UUID
	driverID   kernel.UUID
	amount     float64

	guard kernel.ConstructorGuard
}

// NewTip creates a tip for a delivered delivery. The amount must be positive.
func NewTip(id kernel.UUID, d *Delivery, amount float64) (*Tip, error) {
	if err := errors.Join(id.Validate(), d.Validate()); err != nil {
		return nil, err
	}
	if !d.CanBeRated() {
		return nil, errs.NewValueIsInvalidError("only delivered deliveries can be tipped")
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("tip amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}

	return &Tip{
		id:         id,
		deliveryID: d.ID(),
		customerID: d.CustomerID(),
		driverID:   *d.DriverID(),
		amount:     amount,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// RestoreTip reconstructs a Tip from persistence.
func RestoreTip(id, deliveryID, customerID, driverID kernel.UUID, amount float64) (*Tip, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		customerID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("tip amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}

	return &Tip{
		id:         id,
		deliveryID: deliveryID,
		customerID: customerID,
		driverID:   driverID,
		amount:     amount,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Tip was properly constructed.
func (t *Tip) Validate() error {
	if t == nil {
		return ErrTipIsNotConstructed
	}
	return t.guard.Validate(ErrTipIsNotConstructed)
}

// ID returns the tip's unique identifier.
func (t *Tip) ID() kernel.UUID {
	return t.id
}

// DeliveryID returns the tipped delivery's identifier.
func (t *Tip) DeliveryID() kernel.UUID {
	return t.deliveryID
}

// CustomerID returns the tipping customer's identifier.
func (t *Tip) CustomerID() kernel.UUID {
	return t.customerID
}

// DriverID returns the tipped driver's identifier, snapshotted at creation.
func (t *Tip) DriverID() kernel.UUID {
	return t.driverID
}

// Amount returns the tip amount.
func (t *Tip) Amount() float64 {
	return t.amount
}
