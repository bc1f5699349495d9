// Package queries contains read-only operations for the CQRS architecture.
// Query handlers read the store directly, bypassing aggregates and their
// invariant machinery, and return flat response models for the transport
// layer.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"
)

// DeliveryResponse is the flat read model of a delivery row.
// The verification PIN is filled only for queries scoped to the owning
// customer; driver-facing listings omit it.
type DeliveryResponse struct {
	ID                 string           `json:"id"`
	CustomerID         string           `json:"customer_id"`
	DriverID           *string          `json:"driver_id,omitempty"`
	ServiceType        string           `json:"service_type"`
	VehicleType        string           `json:"vehicle_type,omitempty"`
	PaymentMethod      string           `json:"payment_method"`
	PickupAddress      string           `json:"pickup_address"`
	PickupLat          float64          `json:"pickup_lat"`
	PickupLng          float64          `json:"pickup_lng"`
	DropoffAddress     *string          `json:"dropoff_address,omitempty"`
	DropoffLat         *float64         `json:"dropoff_lat,omitempty"`
	DropoffLng         *float64         `json:"dropoff_lng,omitempty"`
	Weight             float64          `json:"weight"`
	Description        string           `json:"description,omitempty"`
	SpecialInstruction string           `json:"special_instruction,omitempty"`
	SensitivityLevel   string           `json:"sensitivity_level,omitempty"`
	Fragile            bool             `json:"fragile"`
	ScheduledAt        *time.Time       `json:"scheduled_at,omitempty"`
	Price              float64          `json:"price"`
	PriceBreakdown     PriceBreakdown   `json:"price_breakdown"`
	ServiceData        json.RawMessage  `json:"service_data,omitempty"`
	VerificationPIN    string           `json:"verification_pin,omitempty"`
	Status             string           `json:"status"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// PriceBreakdown mirrors the computed price composition for responses.
type PriceBreakdown struct {
	BaseFare float64 `json:"base_fare"`
	Total    float64 `json:"total"`
}

// deliveryColumns is the shared select list; scanDelivery must stay in sync
// with it.
const deliveryColumns = `
	id, customer_id, driver_id,
	service_type, vehicle_type, payment_method,
	pickup_label, pickup_lat, pickup_lng,
	dropoff_label, dropoff_lat, dropoff_lng,
	weight, description, special_instruction, sensitivity_level, fragile,
	scheduled_at, price, price_base_fare, price_total,
	service_data, verification_pin, status,
	created_at, updated_at`

func scanDelivery(rows *sql.Rows) (DeliveryResponse, error) {
	var (
		resp        DeliveryResponse
		driverID    sql.NullString
		vehicle     sql.NullString
		dropLabel   sql.NullString
		dropLat     sql.NullFloat64
		dropLng     sql.NullFloat64
		scheduledAt sql.NullTime
		serviceData sql.NullString
	)

	err := rows.Scan(
		&resp.ID, &resp.CustomerID, &driverID,
		&resp.ServiceType, &vehicle, &resp.PaymentMethod,
		&resp.PickupAddress, &resp.PickupLat, &resp.PickupLng,
		&dropLabel, &dropLat, &dropLng,
		&resp.Weight, &resp.Description, &resp.SpecialInstruction, &resp.SensitivityLevel, &resp.Fragile,
		&scheduledAt, &resp.Price, &resp.PriceBreakdown.BaseFare, &resp.PriceBreakdown.Total,
		&serviceData, &resp.VerificationPIN, &resp.Status,
		&resp.CreatedAt, &resp.UpdatedAt,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if driverID.Valid {
		resp.DriverID = &driverID.String
	}
	if vehicle.Valid {
		resp.VehicleType = vehicle.String
	}
	if dropLabel.Valid {
		resp.DropoffAddress = &dropLabel.String
	}
	if dropLat.Valid {
		resp.DropoffLat = &dropLat.Float64
	}
	if dropLng.Valid {
		resp.DropoffLng = &dropLng.Float64
	}
	if scheduledAt.Valid {
		t := scheduledAt.Time
		resp.ScheduledAt = &t
	}
	if serviceData.Valid && serviceData.String != "" {
		resp.ServiceData = json.RawMessage(serviceData.String)
	}

	return resp, nil
}
