package queries

import (
	"errors"

	"tradlogistics/internal/core/domain/model/kernel"
)

var ErrGetCustomerDeliveriesQueryIsNotConstructed = errors.New(
	"GetCustomerDeliveriesQuery must be created via NewGetCustomerDeliveriesQuery constructor",
)

// GetCustomerDeliveriesQuery retrieves all live deliveries owned by a
// customer, most recent first.
type GetCustomerDeliveriesQuery struct {
	customerID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetCustomerDeliveriesQuery creates a query for a customer's deliveries.
func NewGetCustomerDeliveriesQuery(customerID kernel.UUID) (GetCustomerDeliveriesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerDeliveriesQuery{}, err
	}

	return GetCustomerDeliveriesQuery{
		customerID: customerID,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerDeliveriesQueryIsNotConstructed)
}

// CustomerID returns the identifier of the owning customer.
func (q GetCustomerDeliveriesQuery) CustomerID() kernel.UUID {
	return q.customerID
}
