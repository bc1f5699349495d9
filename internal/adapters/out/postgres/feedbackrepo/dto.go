// Package feedbackrepo provides data transfer objects and mapping functions
// for rating and tip persistence.
//
// Both tables carry a unique index on delivery_id. The index, not an
// application-level existence check, is what makes rating and tipping
// at-most-once per delivery even under concurrent duplicate submissions.
package feedbackrepo

import (
	"time"

	"tradlogistics/internal/core/domain/model/delivery"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting ratings.
type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	DriverID   uuid.UUID `gorm:"type:uuid;index"`
	Value      int
	Review     string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for ratings.
func (RatingDTO) TableName() string {
	return "delivery_ratings"
}

// TipDTO represents the database structure for persisting tips.
type TipDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	DriverID   uuid.UUID `gorm:"type:uuid;index"`
	Amount     float64
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for tips.
func (TipDTO) TableName() string {
	return "delivery_tips"
}

func ratingFromDomain(rating *delivery.Rating) RatingDTO {
	return RatingDTO{
		ID:         rating.ID().Bytes(),
		DeliveryID: rating.DeliveryID().Bytes(),
		CustomerID: rating.CustomerID().Bytes(),
		DriverID:   rating.DriverID().Bytes(),
		Value:      rating.Value(),
		Review:     rating.Review(),
	}
}

func tipFromDomain(tip *delivery.Tip) TipDTO {
	return TipDTO{
		ID:         tip.ID().Bytes(),
		DeliveryID: tip.DeliveryID().Bytes(),
		CustomerID: tip.CustomerID().Bytes(),
		DriverID:   tip.DriverID().Bytes(),
		Amount:     tip.Amount(),
	}
}
