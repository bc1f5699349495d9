package delivery

import (
	"errors"
	"fmt"
	"time"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// PriceBreakdown is the structured composition of a delivery's price.
// The current pricing model is a flat base fare; the breakdown exists so
// richer models (distance, weight, surge) slot in without a schema change.
type PriceBreakdown struct {
	BaseFare float64
	Total    float64
}

// Delivery is the aggregate root of a single logistics job.
//
// Delivery follows these invariants:
//   - The driver reference is nil until the delivery is accepted and,
//     once set, is immutable for the remaining lifetime
//   - The verification PIN is assigned exactly once, at creation
//   - The price is system-computed, never customer-supplied
//   - Status changes only through the transition methods, which enforce
//     the lifecycle state machine
//
// Callers persist every transition with a conditional update keyed on the
// status the aggregate held before the transition method ran; the in-memory
// check decides legality, the store decides who commits first.
type Delivery struct {
	id         kernel.UUID
	customerID kernel.UUID
	driverID   *kernel.UUID

	request Request

	price          float64
	priceBreakdown PriceBreakdown

	verificationPIN string
	status          Status

	isDeleted bool
	deletedAt *time.Time

	guard kernel.ConstructorGuard
}

// NewDelivery creates a pending delivery for a customer from a validated
// request. A fresh verification PIN is generated here and never again.
// The price starts at zero until a quote is applied.
func NewDelivery(id kernel.UUID, customerID kernel.UUID, request Request) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		request.Validate(),
	); err != nil {
		return nil, err
	}

	pin, err := NewVerificationPIN()
	if err != nil {
		return nil, err
	}

	return &Delivery{
		id:              id,
		customerID:      customerID,
		request:         request,
		verificationPIN: pin,
		status:          StatusPending,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
// The driver/status consistency rule is re-checked so a corrupted row
// cannot materialize as a live aggregate.
func RestoreDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	driverID *kernel.UUID,
	request Request,
	price float64,
	priceBreakdown PriceBreakdown,
	verificationPIN string,
	status Status,
	isDeleted bool,
	deletedAt *time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		request.Validate(),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if len(verificationPIN) != VerificationPINLength {
		return nil, errs.NewValueIsInvalidErrorWithCause("verification pin",
			fmt.Errorf("%q does not have %d digits", verificationPIN, VerificationPINLength))
	}

	return &Delivery{
		id:              id,
		customerID:      customerID,
		driverID:        driverID,
		request:         request,
		price:           price,
		priceBreakdown:  priceBreakdown,
		verificationPIN: verificationPIN,
		status:          status,
		isDeleted:       isDeleted,
		deletedAt:       deletedAt,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Delivery was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's public identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CustomerID returns the identifier of the owning customer.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// DriverID returns the assigned driver's identifier, nil until accepted.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// Request returns the validated request the delivery was created from.
func (d *Delivery) Request() Request {
	return d.request
}

// Price returns the system-computed price.
func (d *Delivery) Price() float64 {
	return d.price
}

// PriceBreakdown returns the composition of the price.
func (d *Delivery) PriceBreakdown() PriceBreakdown {
	return d.priceBreakdown
}

// VerificationPIN returns the handoff confirmation code.
func (d *Delivery) VerificationPIN() string {
	return d.verificationPIN
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// IsDeleted reports whether the delivery was soft-deleted.
func (d *Delivery) IsDeleted() bool {
	return d.isDeleted
}

// DeletedAt returns the soft-delete timestamp, nil while live.
func (d *Delivery) DeletedAt() *time.Time {
	return d.deletedAt
}

// IsOwnedBy reports whether the given customer created this delivery.
func (d *Delivery) IsOwnedBy(customerID kernel.UUID) bool {
	return d.customerID.IsEqual(customerID)
}

// IsAssignedTo reports whether the given driver is the assigned driver.
func (d *Delivery) IsAssignedTo(driverID kernel.UUID) bool {
	return d.driverID != nil && d.driverID.IsEqual(driverID)
}

// ApplyQuote sets the computed price and its breakdown.
func (d *Delivery) ApplyQuote(price float64, breakdown PriceBreakdown) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is not greater than 0", price))
	}

	d.price = price
	d.priceBreakdown = breakdown
	return nil
}

// StartSearching opens the delivery for driver acceptance.
// Only a pending delivery may start searching.
func (d *Delivery) StartSearching() error {
	if d.status != StatusPending {
		return NewIllegalTransitionError(d.status, StatusSearching)
	}

	d.status = StatusSearching
	return nil
}

// AssignDriver records the driver who won acceptance. The delivery must be
// searching and unassigned; a driver, once set, is never replaced.
// The caller must persist this transition conditionally on the searching
// status so concurrent acceptors cannot both win.
func (d *Delivery) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.status != StatusSearching || d.driverID != nil {
		return NewIllegalTransitionError(d.status, StatusDriverAssigned)
	}

	d.driverID = &driverID
	d.status = StatusDriverAssigned
	return nil
}

// AdvanceStatus applies a driver-initiated transition. The caller must be
// the assigned driver and the transition must appear in the allow-table.
func (d *Delivery) AdvanceStatus(driverID kernel.UUID, next Status) error {
	if !d.IsAssignedTo(driverID) {
		return errs.NewAccessForbiddenError("only the assigned driver can update the delivery status")
	}
	if err := d.status.ValidateDriverAdvance(next); err != nil {
		return err
	}

	d.status = next
	return nil
}

// Cancel moves the delivery to the terminal cancelled status.
// Cancelling an already terminal delivery fails, including a second cancel.
func (d *Delivery) Cancel() error {
	if err := d.status.ValidateCancel(); err != nil {
		return err
	}

	d.status = StatusCancelled
	return nil
}

// CanBeRated reports whether feedback may be recorded: the delivery is
// delivered and has an assigned driver to attribute it to.
func (d *Delivery) CanBeRated() bool {
	return d.status == StatusDelivered && d.driverID != nil
}

// Edit replaces the request fields. Only a pending delivery is editable;
// afterwards a driver may already be inspecting it.
func (d *Delivery) Edit(request Request) error {
	if err := request.Validate(); err != nil {
		return err
	}
	if d.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s delivery cannot be edited", d.status))
	}

	d.request = request
	return nil
}

// MarkRemoved soft-deletes the delivery. Terminal deliveries are kept for
// history and cannot be removed.
func (d *Delivery) MarkRemoved(now time.Time) error {
	if d.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s delivery cannot be removed", d.status))
	}
	if d.isDeleted {
		return errs.NewValueIsInvalidError("delivery is already removed")
	}

	d.isDeleted = true
	d.deletedAt = &now
	return nil
}
