package queries

import (
	"context"

	"tradlogistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads one delivery's details with access control.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for delivery detail reads.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle returns the delivery if the requester is its owner or assigned
// driver. Unknown and soft-deleted deliveries are both reported as not
// found; a live delivery the requester cannot see is forbidden.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE id = ? AND is_deleted = FALSE
	`, query.DeliveryID().String()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
	}

	resp, err := scanDelivery(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}

	requester := query.RequesterID().String()
	isOwner := resp.CustomerID == requester
	isAssignedDriver := resp.DriverID != nil && *resp.DriverID == requester
	if !isOwner && !isAssignedDriver {
		return DeliveryResponse{}, errs.NewAccessForbiddenError(
			"only the owning customer or the assigned driver can view the delivery")
	}
	if !isOwner {
		resp.VerificationPIN = ""
	}

	return resp, nil
}
