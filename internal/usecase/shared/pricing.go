package shared

import (
	"nabrasa-storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

// Pricing bundles the fee settings every cart read and write prices with.
type Pricing struct {
	Calculator  cart.PriceCalculator
	DeliveryFee decimal.Decimal
}

func NewPricing(trioFee, extraSauceFee, deliveryFee decimal.Decimal) Pricing {
	return Pricing{
		Calculator:  cart.NewPriceCalculator(trioFee, extraSauceFee),
		DeliveryFee: deliveryFee,
	}
}
