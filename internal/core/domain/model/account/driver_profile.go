package account

import (
	"errors"
	"fmt"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

// ErrDriverProfileIsNotConstructed is returned when a DriverProfile instance
// was not created through NewDriverProfile or RestoreDriverProfile.
var ErrDriverProfileIsNotConstructed = errors.New(
	"DriverProfile must be created via NewDriverProfile constructor")

// DriverProfile holds the driver-specific state for an account with the
// driver role: payout balance, delivery counters, and the rating aggregates
// maintained as customers rate completed deliveries.
//
// The profile references its account by identifier; it never owns the
// account. A driver must be verified before appearing in matching.
type DriverProfile struct {
	accountID       kernel.UUID
	balance         float64
	totalDeliveries int
	totalRating     float64
	ratingCount     int
	averageRating   float64
	isOnline        bool
	isVerified      bool

	guard kernel.ConstructorGuard
}

// NewDriverProfile creates an empty profile for a driver account.
// Balance and rating aggregates start at zero; the driver starts offline
// and unverified.
func NewDriverProfile(accountID kernel.UUID) (*DriverProfile, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	return &DriverProfile{
		accountID: accountID,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// RestoreDriverProfile reconstructs a DriverProfile from persistence.
func RestoreDriverProfile(
	accountID kernel.UUID,
	balance float64,
	totalDeliveries int,
	totalRating float64,
	ratingCount int,
	averageRating float64,
	isOnline, isVerified bool,
) (*DriverProfile, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}
	if balance < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("balance",
			fmt.Errorf("%f is negative", balance))
	}
	if ratingCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("rating count",
			fmt.Errorf("%d is negative", ratingCount))
	}

	return &DriverProfile{
		accountID:       accountID,
		balance:         balance,
		totalDeliveries: totalDeliveries,
		totalRating:     totalRating,
		ratingCount:     ratingCount,
		averageRating:   averageRating,
		isOnline:        isOnline,
		isVerified:      isVerified,
		guard:           kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DriverProfile was properly constructed.
func (p *DriverProfile) Validate() error {
	if p == nil {
		return ErrDriverProfileIsNotConstructed
	}
	return p.guard.Validate(ErrDriverProfileIsNotConstructed)
}

// AccountID returns the identifier of the underlying account.
func (p *DriverProfile) AccountID() kernel.UUID {
	return p.accountID
}

// Balance returns the driver's current payout balance.
func (p *DriverProfile) Balance() float64 {
	return p.balance
}

// TotalDeliveries returns the number of deliveries the driver has completed.
func (p *DriverProfile) TotalDeliveries() int {
	return p.totalDeliveries
}

// TotalRating returns the sum of all rating values received.
func (p *DriverProfile) TotalRating() float64 {
	return p.totalRating
}

// RatingCount returns how many ratings the driver has received.
func (p *DriverProfile) RatingCount() int {
	return p.ratingCount
}

// AverageRating returns the running average of received ratings.
func (p *DriverProfile) AverageRating() float64 {
	return p.averageRating
}

// IsOnline reports whether the driver is currently accepting work.
func (p *DriverProfile) IsOnline() bool {
	return p.isOnline
}

// IsVerified reports whether the driver passed document verification.
func (p *DriverProfile) IsVerified() bool {
	return p.isVerified
}

// RecordRating folds a new rating value into the aggregates.
// The caller is responsible for persisting the profile in the same
// transaction as the rating row itself.
func (p *DriverProfile) RecordRating(value int) error {
	if value < 1 || value > 5 {
		return errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}

	p.totalRating += float64(value)
	p.ratingCount++
	p.averageRating = p.totalRating / float64(p.ratingCount)
	return nil
}

// CreditTip adds a tip amount to the driver's balance.
func (p *DriverProfile) CreditTip(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tip amount",
			fmt.Errorf("%f is not greater than 0", amount))
	}

	p.balance += amount
	return nil
}

// MarkDeliveryCompleted bumps the completed-deliveries counter.
func (p *DriverProfile) MarkDeliveryCompleted() {
	p.totalDeliveries++
}
