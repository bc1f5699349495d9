package queries

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery retrieves the deliveries currently open for
// driver acceptance. No geo or vehicle-type filtering yet; the listing is
// an unfiltered status query by design, left as an extension point.
type GetAvailableDeliveriesQuery struct {
	guard kernel.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates a query for open deliveries.
func NewGetAvailableDeliveriesQuery() GetAvailableDeliveriesQuery {
	return GetAvailableDeliveriesQuery{guard: kernel.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}
