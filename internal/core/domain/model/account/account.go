package account

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is the identity aggregate for every party on the platform.
// It carries the role tag that gates delivery operations; role-specific data
// (driver balance, ratings) lives in the corresponding profile entity.
//
// Account follows these invariants:
//   - Must have a valid unique identifier
//   - Phone is the primary contact and is required
//   - Role must be one of the known party types
type Account struct {
	id        kernel.UUID
	firstName string
	lastName  string
	phone     string
	email     string
	role      Role

	guard kernel.ConstructorGuard
}

// NewAccount creates a validated Account with a fresh identifier.
func NewAccount(id kernel.UUID, firstName, lastName, phone, email string, role Role) (*Account, error) {
	a := &Account{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(firstName, lastName),
		a.setPhone(phone),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	a.email = email
	return a, nil
}

// RestoreAccount reconstructs an Account from persistence.
func RestoreAccount(id kernel.UUID, firstName, lastName, phone, email string, role Role) (*Account, error) {
	return NewAccount(id, firstName, lastName, phone, email, role)
}

// Validate ensures the Account was properly constructed.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// FirstName returns the account holder's first name.
func (a *Account) FirstName() string {
	return a.firstName
}

// LastName returns the account holder's last name.
func (a *Account) LastName() string {
	return a.lastName
}

// Phone returns the primary contact phone number.
func (a *Account) Phone() string {
	return a.phone
}

// Email returns the optional contact email.
func (a *Account) Email() string {
	return a.email
}

// Role returns the account's party type.
func (a *Account) Role() Role {
	return a.role
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	a.firstName = firstName
	a.lastName = lastName
	return nil
}

func (a *Account) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
