package http

import (
	"time"

	"tradlogistics/internal/core/domain/model/delivery"
)

// deliveryRequestBody is the JSON body for creating or editing a delivery.
// Field-level validation is the domain's job; the body only carries raw input.
type deliveryRequestBody struct {
	ServiceType   string `json:"service_type"`
	VehicleType   string `json:"vehicle_type"`
	PaymentMethod string `json:"payment_method"`

	PickupAddress string   `json:"pickup_address"`
	PickupLat     *float64 `json:"pickup_lat"`
	PickupLng     *float64 `json:"pickup_lng"`

	DropoffAddress string   `json:"dropoff_address"`
	DropoffLat     *float64 `json:"dropoff_lat"`
	DropoffLng     *float64 `json:"dropoff_lng"`

	Weight             float64 `json:"weight"`
	Description        string  `json:"description"`
	SpecialInstruction string  `json:"special_instruction"`
	SensitivityLevel   string  `json:"sensitivity_level"`
	Fragile            bool    `json:"fragile"`

	ScheduledAt *time.Time `json:"scheduled_at"`

	ServiceData *serviceDataBody `json:"service_data"`
}

type serviceDataBody struct {
	Gas *gasDetailsBody `json:"gas"`
}

type gasDetailsBody struct {
	CylinderSize    string `json:"cylinder_size"`
	Brand           string `json:"brand"`
	TransactionType string `json:"transaction_type"`
	DeliverySpeed   string `json:"delivery_speed"`
}

func (b deliveryRequestBody) toRequestParams() delivery.RequestParams {
	params := delivery.RequestParams{
		ServiceType:        b.ServiceType,
		VehicleType:        b.VehicleType,
		PaymentMethod:      b.PaymentMethod,
		PickupLabel:        b.PickupAddress,
		PickupLatitude:     b.PickupLat,
		PickupLongitude:    b.PickupLng,
		DropoffLabel:       b.DropoffAddress,
		DropoffLatitude:    b.DropoffLat,
		DropoffLongitude:   b.DropoffLng,
		Weight:             b.Weight,
		Description:        b.Description,
		SpecialInstruction: b.SpecialInstruction,
		SensitivityLevel:   b.SensitivityLevel,
		Fragile:            b.Fragile,
		ScheduledAt:        b.ScheduledAt,
	}

	if b.ServiceData != nil && b.ServiceData.Gas != nil {
		params.Gas = &delivery.GasDetails{
			CylinderSize:    b.ServiceData.Gas.CylinderSize,
			Brand:           b.ServiceData.Gas.Brand,
			TransactionType: b.ServiceData.Gas.TransactionType,
			DeliverySpeed:   b.ServiceData.Gas.DeliverySpeed,
		}
	}

	return params
}

// rateRequestBody is the JSON body for rating a delivery.
type rateRequestBody struct {
	Value  int    `json:"value"`
	Review string `json:"review"`
}

// tipRequestBody is the JSON body for tipping a delivery's driver.
type tipRequestBody struct {
	Amount float64 `json:"amount"`
}

// statusRequestBody is the JSON body for a driver status update.
type statusRequestBody struct {
	Status string `json:"status"`
}
