package accountrepo

import (
	"context"
	"errors"

	"tradlogistics/internal/core/domain/model/account"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new account. Phone numbers are unique across accounts.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("account", aggregate.Phone(), err)
		}
		return err
	}

	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddDriverProfile saves a fresh driver profile.
func (r *GormAccountRepository) AddDriverProfile(ctx context.Context, profile *account.DriverProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("driver profile", profile.AccountID().String(), err)
		}
		return err
	}

	return nil
}

// GetDriverProfile retrieves the driver profile for an account.
func (r *GormAccountRepository) GetDriverProfile(
	ctx context.Context,
	accountID kernel.UUID,
) (*account.DriverProfile, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverProfileDTO
	err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver profile", accountID.String())
		}
		return nil, err
	}

	return profileToDomain(dto)
}

// UpdateDriverProfile persists changes to a driver profile.
func (r *GormAccountRepository) UpdateDriverProfile(ctx context.Context, profile *account.DriverProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(profile)
	result := r.db.WithContext(ctx).
		Model(&DriverProfileDTO{}).
		Where("account_id = ?", dto.AccountID).
		Select("*").
		Omit("account_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver profile", profile.AccountID().String())
	}

	return nil
}
