// Package accountrepo provides data transfer objects and mapping functions
// for account and driver-profile persistence.
package accountrepo

import (
	"tradlogistics/internal/core/domain/model/account"
	"tradlogistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting accounts.
type AccountDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Phone     string `gorm:"uniqueIndex"`
	Email     string
	Role      string `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// DriverProfileDTO represents the driver-specific row keyed by account.
type DriverProfileDTO struct {
	AccountID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance         float64
	TotalDeliveries int
	TotalRating     float64
	RatingCount     int
	AverageRating   float64
	IsOnline        bool
	IsVerified      bool
}

// TableName specifies the database table name for driver profiles.
func (DriverProfileDTO) TableName() string {
	return "driver_profiles"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Phone:     aggregate.Phone(),
		Email:     aggregate.Email(),
		Role:      aggregate.Role().String(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.FirstName, dto.LastName, dto.Phone, dto.Email, role)
}

func profileFromDomain(profile *account.DriverProfile) DriverProfileDTO {
	return DriverProfileDTO{
		AccountID:       profile.AccountID().Bytes(),
		Balance:         profile.Balance(),
		TotalDeliveries: profile.TotalDeliveries(),
		TotalRating:     profile.TotalRating(),
		RatingCount:     profile.RatingCount(),
		AverageRating:   profile.AverageRating(),
		IsOnline:        profile.IsOnline(),
		IsVerified:      profile.IsVerified(),
	}
}

func profileToDomain(dto DriverProfileDTO) (*account.DriverProfile, error) {
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreDriverProfile(
		accountID,
		dto.Balance,
		dto.TotalDeliveries,
		dto.TotalRating,
		dto.RatingCount,
		dto.AverageRating,
		dto.IsOnline,
		dto.IsVerified,
	)
}
