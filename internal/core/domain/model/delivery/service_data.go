package delivery

import "errors"

// GasDetails is the service payload for cooking-gas deliveries.
// All four fields are required when the service type is cooking gas.
type GasDetails struct {
	CylinderSize    string
	Brand           string
	TransactionType string
	DeliverySpeed   string
}

// Validate checks that every gas field is present, reporting all missing
// fields at once.
func (d GasDetails) Validate() error {
	var missing []error
	if d.CylinderSize == "" {
		missing = append(missing, errRequired("service_data.gas.cylinder_size"))
	}
	if d.Brand == "" {
		missing = append(missing, errRequired("service_data.gas.brand"))
	}
	if d.TransactionType == "" {
		missing = append(missing, errRequired("service_data.gas.transaction_type"))
	}
	if d.DeliverySpeed == "" {
		missing = append(missing, errRequired("service_data.gas.delivery_speed"))
	}
	return errors.Join(missing...)
}

// ServiceData is the tagged per-service-type payload. Exactly the variant
// matching the delivery's service type is set; all others are nil.
type ServiceData struct {
	Gas *GasDetails
}

// IsEmpty reports whether no variant is set.
func (d ServiceData) IsEmpty() bool {
	return d.Gas == nil
}
