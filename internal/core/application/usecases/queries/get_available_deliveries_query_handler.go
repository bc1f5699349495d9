package queries

import (
	"context"

	"tradlogistics/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetAvailableDeliveriesQueryHandler lists deliveries in the searching
// status for drivers to accept. The transport layer gates this behind the
// driver role; the data never includes verification PINs.
type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for the
// available-deliveries listing.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

// Handle returns all searching deliveries, most recent first. Clients poll
// this listing; a delivery that disappears between polls was accepted or
// cancelled.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE status = ? AND is_deleted = FALSE
		ORDER BY created_at DESC
	`, delivery.StatusSearching.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanDelivery(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		resp.VerificationPIN = ""
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
