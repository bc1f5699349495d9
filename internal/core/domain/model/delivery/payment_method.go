package delivery

import (
	"fmt"

	"tradlogistics/internal/pkg/errs"
)

// PaymentMethod records how the customer intends to pay. Payment capture
// itself happens outside the delivery lifecycle; the method is carried so
// the driver knows whether to collect cash on completion.
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodStripe  PaymentMethod = "stripe"
	PaymentMethodLynk    PaymentMethod = "lynk"
	PaymentMethodJNMoney PaymentMethod = "jn_money"
)

func validPaymentMethods() map[PaymentMethod]struct{} {
	return map[PaymentMethod]struct{}{
		PaymentMethodCash:    {},
		PaymentMethodStripe:  {},
		PaymentMethodLynk:    {},
		PaymentMethodJNMoney: {},
	}
}

// PaymentMethodFromString parses a payment method tag, failing on unknown values.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	if err := method.Validate(); err != nil {
		return "", err
	}
	return method, nil
}

// Validate checks the payment method is one of the supported channels.
func (m PaymentMethod) Validate() error {
	if _, ok := validPaymentMethods()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

// String returns the payment method tag.
func (m PaymentMethod) String() string {
	return string(m)
}
