package delivery

import (
	"fmt"

	"tradlogistics/internal/pkg/errs"
)

// ServiceType selects which fulfillment workflow a delivery request follows.
// Each type carries its own required-field rules, applied by NewRequest.
type ServiceType string

const (
	// ServiceTypePickupDelivery is a standard parcel pickup and dropoff.
	// The customer chooses the vehicle type.
	ServiceTypePickupDelivery ServiceType = "pickup_delivery"

	// ServiceTypeWrecker is vehicle towing. The vehicle type is always the
	// wrecker itself.
	ServiceTypeWrecker ServiceType = "wrecker"

	// ServiceTypeRemovalTruck is furniture or bulk-goods moving with a
	// removal truck.
	ServiceTypeRemovalTruck ServiceType = "removal_truck"

	// ServiceTypeCookingGas is cooking-gas cylinder refill or purchase.
	// The supplier handles routing, so no vehicle or dropoff is recorded.
	ServiceTypeCookingGas ServiceType = "cooking_gas"
)

func validServiceTypes() map[ServiceType]struct{} {
	return map[ServiceType]struct{}{
		ServiceTypePickupDelivery: {},
		ServiceTypeWrecker:        {},
		ServiceTypeRemovalTruck:   {},
		ServiceTypeCookingGas:     {},
	}
}

// ServiceTypeFromString parses a service type tag, failing on unknown values.
func ServiceTypeFromString(s string) (ServiceType, error) {
	serviceType := ServiceType(s)
	if err := serviceType.Validate(); err != nil {
		return "", err
	}
	return serviceType, nil
}

// Validate checks the service type is one of the supported workflows.
func (t ServiceType) Validate() error {
	if _, ok := validServiceTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("service type",
			fmt.Errorf("%q is not a valid service type", string(t)))
	}
	return nil
}

// String returns the service type tag.
func (t ServiceType) String() string {
	return string(t)
}
