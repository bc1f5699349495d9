package ports

import (
	"context"

	"tradlogistics/internal/core/domain/model/account"
	"tradlogistics/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for accounts and their
// role-specific profiles.
type AccountRepository interface {
	// Add persists a new account. For driver accounts the caller persists
	// the profile separately through AddDriverProfile.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// AddDriverProfile persists a fresh driver profile.
	AddDriverProfile(ctx context.Context, profile *account.DriverProfile) error

	// GetDriverProfile retrieves the driver profile for an account.
	GetDriverProfile(ctx context.Context, accountID kernel.UUID) (*account.DriverProfile, error)

	// UpdateDriverProfile persists changes to a driver profile, such as
	// rating aggregates and balance credits.
	UpdateDriverProfile(ctx context.Context, profile *account.DriverProfile) error
}
