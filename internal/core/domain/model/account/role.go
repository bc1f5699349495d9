package account

import (
	"fmt"

	"tradlogistics/internal/pkg/errs"
)

// Role classifies an account as one of the party types known to the platform.
// The role decides which operations an account may perform: customers and
// companies create deliveries, drivers fulfill them, admins are out of scope
// for the delivery lifecycle.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleCompany  Role = "company"
	RoleAdmin    Role = "admin"
)

func validRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleCustomer: {},
		RoleDriver:   {},
		RoleCompany:  {},
		RoleAdmin:    {},
	}
}

// RoleFromString parses a role tag, failing on unknown values.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks the role is one of the known party types.
func (r Role) Validate() error {
	if _, ok := validRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the role tag.
func (r Role) String() string {
	return string(r)
}

// CanRequestDeliveries reports whether accounts with this role may create
// delivery requests. Both individual customers and business accounts qualify.
func (r Role) CanRequestDeliveries() bool {
	return r == RoleCustomer || r == RoleCompany
}
