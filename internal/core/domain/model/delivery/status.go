package delivery

import (
	"errors"
	"fmt"

	"tradlogistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Searching ──> DriverAssigned ──> PickedUp ──> InTransit ──> Delivered
//	   │            │               │
//	   └────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// Driver-initiated advances are restricted to the allow-table returned by
// driverAdvances; everything else fails with IllegalTransitionError.
type Status string

const (
	// StatusPending is the initial status when a delivery is first created.
	// The customer can still edit the request while pending.
	StatusPending Status = "pending"

	// StatusSearching indicates the customer asked the platform to find a
	// driver. Searching deliveries are visible to drivers for acceptance.
	StatusSearching Status = "searching"

	// StatusDriverAssigned indicates exactly one driver won the acceptance
	// race. From this point the driver reference is immutable.
	StatusDriverAssigned Status = "driver_assigned"

	// StatusPickedUp indicates the driver confirmed physical pickup.
	StatusPickedUp Status = "picked_up"

	// StatusInTransit indicates the delivery is on its way to the dropoff.
	StatusInTransit Status = "in_transit"

	// StatusDelivered is the terminal success state. Rating and tipping
	// become available once delivered.
	StatusDelivered Status = "delivered"

	// StatusCancelled is the terminal failure state, reachable from
	// Pending, Searching, and DriverAssigned.
	StatusCancelled Status = "cancelled"
)

// ErrIllegalTransition is the sentinel wrapped by every IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal status transition")

// IllegalTransitionError reports a requested transition that the state
// machine does not allow, carrying both endpoints for diagnostics.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given endpoints.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:        {},
		StatusSearching:      {},
		StatusDriverAssigned: {},
		StatusPickedUp:       {},
		StatusInTransit:      {},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// driverAdvances is the explicit allow-table for driver-initiated status
// updates. Any (current, requested) pair not listed here is illegal.
func driverAdvances() map[Status][]Status {
	return map[Status][]Status{
		StatusDriverAssigned: {StatusPickedUp, StatusCancelled},
		StatusPickedUp:       {StatusInTransit},
		StatusInTransit:      {StatusDelivered},
	}
}

// StatusFromString parses a status value, failing on unknown values.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidateDriverAdvance checks the driver allow-table for a requested
// transition. Returns IllegalTransitionError for any pair outside the table,
// including all transitions out of terminal states.
func (s Status) ValidateDriverAdvance(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	allowed, ok := driverAdvances()[s]
	if !ok {
		return NewIllegalTransitionError(s, next)
	}
	for _, candidate := range allowed {
		if candidate == next {
			return nil
		}
	}
	return NewIllegalTransitionError(s, next)
}

// ValidateCancel checks that a customer-initiated cancellation is legal.
// Cancellation is allowed from any non-terminal status.
func (s Status) ValidateCancel() error {
	if s.IsTerminal() {
		return NewIllegalTransitionError(s, StatusCancelled)
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between the status and the
// presence of an assigned driver.
//
// Business rules:
//   - Pending and Searching deliveries must not have a driver
//   - DriverAssigned, PickedUp, InTransit, and Delivered must have one
//   - Cancelled may go either way (cancellation before or after assignment)
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if s == StatusCancelled {
		return nil
	}

	requiresDriver := s != StatusPending && s != StatusSearching
	if hasDriver && !requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a driver", s))
	}
	if !hasDriver && requiresDriver {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no driver", s))
	}
	return nil
}
