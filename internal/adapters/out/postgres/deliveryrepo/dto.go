// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"encoding/json"
	"time"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The status column is indexed because both driver matching and conditional
// transition updates key on it.
type DeliveryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`

	ServiceType   string  `gorm:"type:varchar(32)"`
	VehicleType   *string `gorm:"type:varchar(32)"`
	PaymentMethod string  `gorm:"type:varchar(32)"`

	PickupLabel string
	PickupLat   float64 `gorm:"column:pickup_lat"`
	PickupLng   float64 `gorm:"column:pickup_lng"`

	DropoffLabel *string
	DropoffLat   *float64 `gorm:"column:dropoff_lat"`
	DropoffLng   *float64 `gorm:"column:dropoff_lng"`

	Weight             float64
	Description        string
	SpecialInstruction string
	SensitivityLevel   string
	Fragile            bool

	ScheduledAt *time.Time `gorm:"index"`

	Price         float64
	PriceBaseFare float64
	PriceTotal    float64

	ServiceData     *string `gorm:"type:jsonb"`
	VerificationPIN string  `gorm:"column:verification_pin;type:varchar(8)"`
	Status          string  `gorm:"type:varchar(32);index"`

	IsDeleted bool       `gorm:"index"`
	DeletedAt *time.Time `gorm:"column:deleted_at"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// serviceDataDTO is the JSON shape of the per-service-type payload column.
type serviceDataDTO struct {
	Gas *gasDetailsDTO `json:"gas,omitempty"`
}

type gasDetailsDTO struct {
	CylinderSize    string `json:"cylinder_size"`
	Brand           string `json:"brand"`
	TransactionType string `json:"transaction_type"`
	DeliverySpeed   string `json:"delivery_speed"`
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) (DeliveryDTO, error) {
	request := aggregate.Request()

	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var vehicleType *string
	if v := request.VehicleType(); v != "" {
		s := v.String()
		vehicleType = &s
	}

	var dropoffLabel *string
	var dropoffLat, dropoffLng *float64
	if dropoff := request.Dropoff(); dropoff != nil {
		label := dropoff.Label()
		lat := dropoff.Latitude()
		lng := dropoff.Longitude()
		dropoffLabel = &label
		dropoffLat = &lat
		dropoffLng = &lng
	}

	var serviceData *string
	if gas := request.ServiceData().Gas; gas != nil {
		raw, err := json.Marshal(serviceDataDTO{Gas: &gasDetailsDTO{
			CylinderSize:    gas.CylinderSize,
			Brand:           gas.Brand,
			TransactionType: gas.TransactionType,
			DeliverySpeed:   gas.DeliverySpeed,
		}})
		if err != nil {
			return DeliveryDTO{}, err
		}
		encoded := string(raw)
		serviceData = &encoded
	}

	return DeliveryDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		DriverID:           driverID,
		ServiceType:        request.ServiceType().String(),
		VehicleType:        vehicleType,
		PaymentMethod:      request.PaymentMethod().String(),
		PickupLabel:        request.Pickup().Label(),
		PickupLat:          request.Pickup().Latitude(),
		PickupLng:          request.Pickup().Longitude(),
		DropoffLabel:       dropoffLabel,
		DropoffLat:         dropoffLat,
		DropoffLng:         dropoffLng,
		Weight:             request.Weight(),
		Description:        request.Description(),
		SpecialInstruction: request.SpecialInstruction(),
		SensitivityLevel:   request.SensitivityLevel(),
		Fragile:            request.Fragile(),
		ScheduledAt:        request.ScheduledAt(),
		Price:              aggregate.Price(),
		PriceBaseFare:      aggregate.PriceBreakdown().BaseFare,
		PriceTotal:         aggregate.PriceBreakdown().Total,
		ServiceData:        serviceData,
		VerificationPIN:    aggregate.VerificationPIN(),
		Status:             aggregate.Status().String(),
		IsDeleted:          aggregate.IsDeleted(),
		DeletedAt:          aggregate.DeletedAt(),
	}, nil
}

// toDomain converts a database DTO to a delivery aggregate.
// Reconstructs the validated request and the aggregate via the restore
// constructors so stored rows pass the same invariant checks.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	serviceType, err := delivery.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := delivery.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var vehicleType delivery.VehicleType
	if dto.VehicleType != nil {
		vehicleType, err = delivery.VehicleTypeFromString(*dto.VehicleType)
		if err != nil {
			return nil, err
		}
	}

	pickup, err := kernel.NewAddress(dto.PickupLabel, dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	var dropoff *kernel.Address
	if dto.DropoffLabel != nil && dto.DropoffLat != nil && dto.DropoffLng != nil {
		address, addrErr := kernel.NewAddress(*dto.DropoffLabel, *dto.DropoffLat, *dto.DropoffLng)
		if addrErr != nil {
			return nil, addrErr
		}
		dropoff = &address
	}

	var serviceData delivery.ServiceData
	if dto.ServiceData != nil && *dto.ServiceData != "" {
		var decoded serviceDataDTO
		if err = json.Unmarshal([]byte(*dto.ServiceData), &decoded); err != nil {
			return nil, err
		}
		if decoded.Gas != nil {
			serviceData.Gas = &delivery.GasDetails{
				CylinderSize:    decoded.Gas.CylinderSize,
				Brand:           decoded.Gas.Brand,
				TransactionType: decoded.Gas.TransactionType,
				DeliverySpeed:   decoded.Gas.DeliverySpeed,
			}
		}
	}

	request, err := delivery.RestoreRequest(
		serviceType,
		vehicleType,
		paymentMethod,
		pickup,
		dropoff,
		dto.Weight,
		dto.Description,
		dto.SpecialInstruction,
		dto.SensitivityLevel,
		dto.Fragile,
		dto.ScheduledAt,
		serviceData,
	)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		customerID,
		driverID,
		request,
		dto.Price,
		delivery.PriceBreakdown{BaseFare: dto.PriceBaseFare, Total: dto.PriceTotal},
		dto.VerificationPIN,
		status,
		dto.IsDeleted,
		dto.DeletedAt,
	)
}
