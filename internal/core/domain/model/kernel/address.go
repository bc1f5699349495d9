package kernel

import (
	"fmt"

	"tradlogistics/internal/pkg/errs"
)

// Latitude and longitude bounds for a valid geocoded address.
const (
	AddressMinLatitude  float64 = -90
	AddressMaxLatitude  float64 = 90
	AddressMinLongitude float64 = -180
	AddressMaxLongitude float64 = 180
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created via the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a geocoded street address used for pickup and dropoff legs.
// Address is an immutable value object combining a free-text label with validated
// latitude/longitude coordinates. The zero value is invalid and will fail
// validation - use NewAddress to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 Hope Rd, Kingston", 18.0179, -76.8099)
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	label     string
	latitude  float64
	longitude float64
	guard     ConstructorGuard
}

// NewAddress creates an Address from a non-empty label and coordinates within
// the valid latitude [-90..90] and longitude [-180..180] ranges.
func NewAddress(label string, latitude, longitude float64) (Address, error) {
	if label == "" {
		return Address{}, errs.NewValueIsRequiredError("address label")
	}

	if latitude < AddressMinLatitude || latitude > AddressMaxLatitude {
		return Address{}, errs.NewValueIsOutOfRangeError(
			"latitude", latitude, AddressMinLatitude, AddressMaxLatitude)
	}

	if longitude < AddressMinLongitude || longitude > AddressMaxLongitude {
		return Address{}, errs.NewValueIsOutOfRangeError(
			"longitude", longitude, AddressMinLongitude, AddressMaxLongitude)
	}

	return Address{
		label:     label,
		latitude:  latitude,
		longitude: longitude,
		guard:     NewConstructorGuard(),
	}, nil
}

// Label returns the free-text street address label.
func (a Address) Label() string {
	return a.label
}

// Latitude returns the latitude component of the geocoded address.
func (a Address) Latitude() float64 {
	return a.latitude
}

// Longitude returns the longitude component of the geocoded address.
func (a Address) Longitude() float64 {
	return a.longitude
}

// IsEqual compares two addresses by label and coordinates.
func (a Address) IsEqual(other Address) bool {
	return a.label == other.label && a.latitude == other.latitude && a.longitude == other.longitude
}

// String returns a human-readable representation of the address.
func (a Address) String() string {
	return fmt.Sprintf("%s (%f,%f)", a.label, a.latitude, a.longitude)
}

// Validate checks that the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
