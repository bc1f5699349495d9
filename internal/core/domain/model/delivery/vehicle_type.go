package delivery

import (
	"fmt"

	"tradlogistics/internal/pkg/errs"
)

// VehicleType identifies the class of vehicle requested for a delivery.
// For parcel pickup the customer picks one; for towing and removals the
// service type dictates it.
type VehicleType string

const (
	VehicleTypeCar          VehicleType = "car"
	VehicleTypeBike         VehicleType = "bike"
	VehicleTypeVan          VehicleType = "van"
	VehicleTypeWrecker      VehicleType = "wrecker"
	VehicleTypeRemovalTruck VehicleType = "removal_truck"
)

func validVehicleTypes() map[VehicleType]struct{} {
	return map[VehicleType]struct{}{
		VehicleTypeCar:          {},
		VehicleTypeBike:         {},
		VehicleTypeVan:          {},
		VehicleTypeWrecker:      {},
		VehicleTypeRemovalTruck: {},
	}
}

// VehicleTypeFromString parses a vehicle type tag, failing on unknown values.
func VehicleTypeFromString(s string) (VehicleType, error) {
	vehicleType := VehicleType(s)
	if err := vehicleType.Validate(); err != nil {
		return "", err
	}
	return vehicleType, nil
}

// Validate checks the vehicle type is one of the known classes.
func (t VehicleType) Validate() error {
	if _, ok := validVehicleTypes()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type",
			fmt.Errorf("%q is not a valid vehicle type", string(t)))
	}
	return nil
}

// String returns the vehicle type tag.
func (t VehicleType) String() string {
	return string(t)
}
