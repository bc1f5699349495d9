package feedbackrepo

import (
	"context"
	"errors"

	"tradlogistics/internal/core/domain/model/delivery"
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

// GormFeedbackRepository implements FeedbackRepository using GORM.
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewGormFeedbackRepository creates a new GORM feedback repository.
func NewGormFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// AddRating saves a rating. A delivery already rated, even by a racing
// duplicate submission, surfaces as ObjectAlreadyExistsError from the
// unique index on delivery_id.
func (r *GormFeedbackRepository) AddRating(ctx context.Context, rating *delivery.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	dto := ratingFromDomain(rating)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("rating", rating.DeliveryID().String(), err)
		}
		return err
	}

	return nil
}

// AddTip saves a tip, with the same uniqueness behavior as AddRating.
func (r *GormFeedbackRepository) AddTip(ctx context.Context, tip *delivery.Tip) error {
	if err := tip.Validate(); err != nil {
		return err
	}

	dto := tipFromDomain(tip)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("tip", tip.DeliveryID().String(), err)
		}
		return err
	}

	return nil
}
