package delivery

import (
	"errors"
	"fmt"
	"time"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// RequestParams is the raw, untrusted input for a delivery request.
// Optional scalar coordinates are pointers so absence is distinguishable
// from zero.
type RequestParams struct {
	ServiceType   string
	VehicleType   string
	PaymentMethod string

	PickupLabel     string
	PickupLatitude  *float64
	PickupLongitude *float64

	DropoffLabel     string
	DropoffLatitude  *float64
	DropoffLongitude *float64

	Weight             float64
	Description        string
	SpecialInstruction string
	SensitivityLevel   string
	Fragile            bool

	ScheduledAt *time.Time

	Gas *GasDetails
}

// Request is a validated and normalized delivery request, the only input
// the Delivery aggregate accepts.
//
// Normalization rules per service type:
//   - pickup_delivery requires a customer-chosen vehicle type and a dropoff
//   - wrecker and removal_truck force the vehicle type and require a dropoff
//   - cooking_gas requires the gas payload and carries no vehicle type or
//     dropoff (the pickup address doubles as the delivery address)
type Request struct {
	serviceType   ServiceType
	vehicleType   VehicleType
	paymentMethod PaymentMethod

	pickup  kernel.Address
	dropoff *kernel.Address

	weight             float64
	description        string
	specialInstruction string
	sensitivityLevel   string
	fragile            bool

	scheduledAt *time.Time

	serviceData ServiceData

	guard kernel.ConstructorGuard
}

func errRequired(name string) error {
	return errs.NewValueIsRequiredError(name)
}

// NewRequest validates raw request parameters against the rules of the
// requested service type and returns a normalized Request.
// All missing required fields are reported together in a single joined error.
// The scheduled time, when given, must be strictly after now.
func NewRequest(params RequestParams, now time.Time) (Request, error) {
	serviceType, err := ServiceTypeFromString(params.ServiceType)
	if err != nil {
		return Request{}, err
	}
	paymentMethod, err := PaymentMethodFromString(params.PaymentMethod)
	if err != nil {
		return Request{}, err
	}

	pickup, err := newPickupAddress(params)
	if err != nil {
		return Request{}, err
	}

	if params.ScheduledAt != nil && !params.ScheduledAt.After(now) {
		return Request{}, errs.NewValueIsInvalidErrorWithCause("scheduled_at",
			fmt.Errorf("%s is not in the future", params.ScheduledAt.Format(time.RFC3339)))
	}

	if params.Weight < 0 {
		return Request{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%f is negative", params.Weight))
	}

	r := Request{
		serviceType:        serviceType,
		paymentMethod:      paymentMethod,
		pickup:             pickup,
		weight:             params.Weight,
		description:        params.Description,
		specialInstruction: params.SpecialInstruction,
		sensitivityLevel:   params.SensitivityLevel,
		fragile:            params.Fragile,
		scheduledAt:        params.ScheduledAt,
		guard:              kernel.NewConstructorGuard(),
	}

	switch serviceType {
	case ServiceTypePickupDelivery:
		vehicleType, dropoff, err := requireVehicleAndDropoff(params, "")
		if err != nil {
			return Request{}, err
		}
		r.vehicleType = vehicleType
		r.dropoff = dropoff

	case ServiceTypeWrecker:
		_, dropoff, err := requireVehicleAndDropoff(params, VehicleTypeWrecker)
		if err != nil {
			return Request{}, err
		}
		r.vehicleType = VehicleTypeWrecker
		r.dropoff = dropoff

	case ServiceTypeRemovalTruck:
		_, dropoff, err := requireVehicleAndDropoff(params, VehicleTypeRemovalTruck)
		if err != nil {
			return Request{}, err
		}
		r.vehicleType = VehicleTypeRemovalTruck
		r.dropoff = dropoff

	case ServiceTypeCookingGas:
		if params.Gas == nil {
			return Request{}, errRequired("service_data.gas")
		}
		if err := params.Gas.Validate(); err != nil {
			return Request{}, err
		}
		gas := *params.Gas
		r.serviceData = ServiceData{Gas: &gas}
		// Gas has no dropoff leg and no customer-chosen vehicle.
		r.vehicleType = ""
		r.dropoff = nil
	}

	return r, nil
}

// newPickupAddress builds the pickup address, reporting every missing
// component at once.
func newPickupAddress(params RequestParams) (kernel.Address, error) {
	var missing []error
	if params.PickupLabel == "" {
		missing = append(missing, errRequired("pickup_address"))
	}
	if params.PickupLatitude == nil {
		missing = append(missing, errRequired("pickup_lat"))
	}
	if params.PickupLongitude == nil {
		missing = append(missing, errRequired("pickup_lng"))
	}
	if err := errors.Join(missing...); err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(params.PickupLabel, *params.PickupLatitude, *params.PickupLongitude)
}

// requireVehicleAndDropoff enforces the dropoff leg and resolves the vehicle
// type. When forced is non-empty the service type dictates the vehicle and
// any customer input is ignored; otherwise the customer must supply one.
func requireVehicleAndDropoff(params RequestParams, forced VehicleType) (VehicleType, *kernel.Address, error) {
	var missing []error

	vehicleType := forced
	if forced == "" {
		if params.VehicleType == "" {
			missing = append(missing, errRequired("vehicle_type"))
		} else {
			parsed, err := VehicleTypeFromString(params.VehicleType)
			if err != nil {
				return "", nil, err
			}
			vehicleType = parsed
		}
	}

	if params.DropoffLabel == "" {
		missing = append(missing, errRequired("dropoff_address"))
	}
	if params.DropoffLatitude == nil {
		missing = append(missing, errRequired("dropoff_lat"))
	}
	if params.DropoffLongitude == nil {
		missing = append(missing, errRequired("dropoff_lng"))
	}
	if err := errors.Join(missing...); err != nil {
		return "", nil, err
	}

	dropoff, err := kernel.NewAddress(params.DropoffLabel, *params.DropoffLatitude, *params.DropoffLongitude)
	if err != nil {
		return "", nil, err
	}
	return vehicleType, &dropoff, nil
}

// RestoreRequest reconstructs an already-validated Request from persistence.
// The schedule is not re-checked against the clock; a stored delivery may
// legitimately carry a scheduled time that has since passed.
func RestoreRequest(
	serviceType ServiceType,
	vehicleType VehicleType,
	paymentMethod PaymentMethod,
	pickup kernel.Address,
	dropoff *kernel.Address,
	weight float64,
	description, specialInstruction, sensitivityLevel string,
	fragile bool,
	scheduledAt *time.Time,
	serviceData ServiceData,
) (Request, error) {
	if err := errors.Join(
		serviceType.Validate(),
		paymentMethod.Validate(),
		pickup.Validate(),
	); err != nil {
		return Request{}, err
	}
	if vehicleType != "" {
		if err := vehicleType.Validate(); err != nil {
			return Request{}, err
		}
	}
	if dropoff != nil {
		if err := dropoff.Validate(); err != nil {
			return Request{}, err
		}
	}

	return Request{
		serviceType:        serviceType,
		vehicleType:        vehicleType,
		paymentMethod:      paymentMethod,
		pickup:             pickup,
		dropoff:            dropoff,
		weight:             weight,
		description:        description,
		specialInstruction: specialInstruction,
		sensitivityLevel:   sensitivityLevel,
		fragile:            fragile,
		scheduledAt:        scheduledAt,
		serviceData:        serviceData,
		guard:              kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Request was properly constructed.
func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ServiceType returns the fulfillment workflow of the request.
func (r Request) ServiceType() ServiceType {
	return r.serviceType
}

// VehicleType returns the resolved vehicle type. Empty for cooking gas.
func (r Request) VehicleType() VehicleType {
	return r.vehicleType
}

// PaymentMethod returns how the customer intends to pay.
func (r Request) PaymentMethod() PaymentMethod {
	return r.paymentMethod
}

// Pickup returns the pickup address.
func (r Request) Pickup() kernel.Address {
	return r.pickup
}

// Dropoff returns the dropoff address, nil for cooking gas.
func (r Request) Dropoff() *kernel.Address {
	return r.dropoff
}

// Weight returns the declared parcel weight.
func (r Request) Weight() float64 {
	return r.weight
}

// Description returns the free-text description of the goods.
func (r Request) Description() string {
	return r.description
}

// SpecialInstruction returns handling notes for the driver.
func (r Request) SpecialInstruction() string {
	return r.specialInstruction
}

// SensitivityLevel returns the declared sensitivity of the goods.
func (r Request) SensitivityLevel() string {
	return r.sensitivityLevel
}

// Fragile reports whether the goods need fragile handling.
func (r Request) Fragile() bool {
	return r.fragile
}

// ScheduledAt returns the requested future dispatch time, nil for immediate.
func (r Request) ScheduledAt() *time.Time {
	return r.scheduledAt
}

// ServiceData returns the per-service-type payload.
func (r Request) ServiceData() ServiceData {
	return r.serviceData
}
