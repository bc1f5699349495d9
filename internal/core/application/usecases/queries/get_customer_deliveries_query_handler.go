package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerDeliveriesQueryHandler reads a customer's own deliveries.
// Soft-deleted rows are excluded here, as on every read path.
type GetCustomerDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerDeliveriesQueryHandler creates a handler for customer
// delivery listings.
func NewGetCustomerDeliveriesQueryHandler(db *gorm.DB) GetCustomerDeliveriesQueryHandler {
	return GetCustomerDeliveriesQueryHandler{db: db}
}

// Handle returns the customer's live deliveries ordered most-recent-first.
func (h GetCustomerDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE customer_id = ? AND is_deleted = FALSE
		ORDER BY created_at DESC
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanDelivery(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
