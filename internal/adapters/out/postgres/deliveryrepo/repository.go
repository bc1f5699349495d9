package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWhereStatus persists the aggregate only where the stored row still
// holds the expected status. The WHERE clause on (id, status) makes the
// write a compare-and-swap: when two writers race, the database applies one
// and reports zero affected rows to the other. Returns false, without an
// error, for the loser.
func (r *GormDeliveryRepository) UpdateWhereStatus(
	ctx context.Context,
	aggregate *delivery.Delivery,
	expected delivery.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	if err := expected.Validate(); err != nil {
		return false, err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return false, err
	}

	// Select("*") forces zero-valued columns (cleared driver, false flags)
	// to be written too; struct-based Updates would skip them.
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// Get retrieves a live delivery by ID. Soft-deleted rows are treated as
// not found.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND is_deleted = FALSE", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetScheduledPendingDue retrieves pending scheduled deliveries whose
// dispatch time has arrived.
func (r *GormDeliveryRepository) GetScheduledPendingDue(
	ctx context.Context,
	now time.Time,
) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Find(&dtos,
			"status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ? AND is_deleted = FALSE",
			delivery.StatusPending.String(), now).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}
