package cart

import (
	"github.com/shopspring/decimal"
)

// TripleSizeName grants a second free sauce.
const TripleSizeName = "Triplo"

type PriceCalculator interface {
	UnitPrice(line Line) decimal.Decimal
	LinePrice(line Line) decimal.Decimal
	SauceOverage(line Line) (extra int, fee decimal.Decimal)
}

type DefaultPriceCalculator struct {
	TrioFee       decimal.Decimal
	ExtraSauceFee decimal.Decimal
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		TrioFee:       decimal.NewFromInt(10),
		ExtraSauceFee: decimal.NewFromInt(2),
	}
}

func NewPriceCalculator(trioFee, extraSauceFee decimal.Decimal) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{TrioFee: trioFee, ExtraSauceFee: extraSauceFee}
}

// UnitPrice applies, in order: size increase, variant override, sweet override,
// potato override, trio fee and sauce overage.
func (pc *DefaultPriceCalculator) UnitPrice(line Line) decimal.Decimal {
	price := line.basePrice

	if line.size != nil {
		price = price.Add(line.size.PriceIncrease)
	}
	if line.variant != nil && !line.variant.Price.Equal(line.basePrice) {
		price = line.variant.Price
	}
	if line.sweetOption != nil {
		price = line.sweetOption.Price
	}
	if line.potatoOption != nil {
		price = line.potatoOption.Price
	}
	if line.isTrio {
		price = price.Add(pc.TrioFee)
	}

	_, fee := pc.SauceOverage(line)
	return price.Add(fee)
}

func (pc *DefaultPriceCalculator) LinePrice(line Line) decimal.Decimal {
	return pc.UnitPrice(line).Mul(decimal.NewFromInt(int64(line.quantity)))
}

// SauceOverage is the single source of the extra-sauce rule, shared by pricing
// and message building.
func (pc *DefaultPriceCalculator) SauceOverage(line Line) (int, decimal.Decimal) {
	if !line.IsBurger() {
		return 0, decimal.Zero
	}
	sizeName := ""
	if line.size != nil {
		sizeName = line.size.Name
	}
	extra := ExtraSauces(sizeName, len(line.sauces))
	return extra, pc.ExtraSauceFee.Mul(decimal.NewFromInt(int64(extra)))
}

func FreeSauces(sizeName string) int {
	if sizeName == TripleSizeName {
		return 2
	}
	return 1
}

func ExtraSauces(sizeName string, count int) int {
	extra := count - FreeSauces(sizeName)
	if extra < 0 {
		return 0
	}
	return extra
}
