package ports

import (
	"context"

	"tradlogistics/internal/core/domain/model/delivery"
)

// FeedbackRepository defines the persistence contract for post-delivery
// ratings and tips.
//
// The store enforces at most one rating and one tip per delivery with a
// unique constraint on the delivery reference. A violated constraint
// surfaces as ObjectAlreadyExistsError, which closes the race between two
// simultaneous duplicate submissions without an application-level existence
// check.
type FeedbackRepository interface {
	// AddRating persists a rating. Fails with ObjectAlreadyExistsError if
	// the delivery was already rated.
	AddRating(ctx context.Context, rating *delivery.Rating) error

	// AddTip persists a tip. Fails with ObjectAlreadyExistsError if the
	// delivery was already tipped.
	AddTip(ctx context.Context, tip *delivery.Tip) error
}
