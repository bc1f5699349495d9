package services

import (
	"tradlogistics/internal/core/domain/model/delivery"
)

// BaseFare is the flat fare charged for every delivery until a real pricing
// engine lands.
const BaseFare = 120

// Quote is the outcome of pricing a delivery request.
type Quote struct {
	Price     float64
	Breakdown delivery.PriceBreakdown
}

// Pricer is a domain service that computes the price of a delivery request.
//
// The current model is a deliberate placeholder: every request gets the flat
// base fare regardless of distance, vehicle, or weight. The Quote carries a
// structured breakdown so distance and surge components can be added without
// touching callers.
type Pricer struct{}

// NewPricer creates a new Pricer instance.
func NewPricer() Pricer {
	return Pricer{}
}

// Price computes a quote for a validated request.
func (p Pricer) Price(request delivery.Request) (Quote, error) {
	if err := request.Validate(); err != nil {
		return Quote{}, err
	}

	return Quote{
		Price: BaseFare,
		Breakdown: delivery.PriceBreakdown{
			BaseFare: BaseFare,
			Total:    BaseFare,
		},
	}, nil
}
