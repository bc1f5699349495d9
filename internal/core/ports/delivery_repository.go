package ports

import (
	"context"
	"time"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
//
// Every lifecycle transition must be persisted through UpdateWhereStatus so
// concurrent mutations of the same delivery cannot both survive. Plain
// Update exists only for changes that do not move the status (price quotes,
// request edits persisted together with their guarding status check).
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// UpdateWhereStatus persists the aggregate's current state only if the
	// stored row still holds the expected status. Returns false, without
	// error, when the conditional match fails because another writer got
	// there first. This is the single sanctioned path for every status
	// transition, acceptance included.
	UpdateWhereStatus(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) (bool, error)

	// Get retrieves a live (not soft-deleted) delivery by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetScheduledPendingDue retrieves pending deliveries whose scheduled
	// time has arrived. Used by the dispatch job to open them for search.
	GetScheduledPendingDue(ctx context.Context, now time.Time) ([]*delivery.Delivery, error)
}
