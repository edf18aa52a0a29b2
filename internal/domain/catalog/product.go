package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is unavailable")
	ErrUnknownSizeGroup   = errors.New("unknown size group")
	ErrMultiplePricing    = errors.New("product defines more than one pricing strategy")
)

type Category string

const (
	CategoryBurger Category = "burger"
	CategorySide   Category = "side"
	CategoryDrink  Category = "drink"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBurger, CategorySide, CategoryDrink:
		return true
	default:
		return false
	}
}

// DefaultMaxSauces applies when a product does not set its own sauce cap.
const DefaultMaxSauces = 4

type Variant struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Unavailable bool            `json:"unavailable,omitempty"`
}

type SizeOption struct {
	Name          string          `json:"name"`
	PriceIncrease decimal.Decimal `json:"priceIncrease"`
}

type SweetOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type PotatoOption struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

type ComboOption struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

type DrinkOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	ImageRef        string          `json:"imageRef"`
	Category        Category        `json:"category"`
	AvailableSauces []string        `json:"availableSauces,omitempty"`
	MaxSauces       int             `json:"maxFreeOrSelectableSauces,omitempty"`
	Variants        []Variant       `json:"variants,omitempty"`
	SizeGroupKey    string          `json:"sizeGroupKey,omitempty"`
	IsSweetVariant  bool            `json:"isSweetVariant,omitempty"`
	SweetOptions    []SweetOption   `json:"sweetOptions,omitempty"`
	PotatoOptions   []PotatoOption  `json:"potatoOptions,omitempty"`
	ComboOptions    []ComboOption   `json:"comboOptions,omitempty"`
	SpecialTags     []string        `json:"specialTags,omitempty"`
	IsUnavailable   bool            `json:"isUnavailable,omitempty"`
}

// PricingStrategy names the single option family that drives a product's primary price.
type PricingStrategy string

const (
	PricingBase    PricingStrategy = "base"
	PricingVariant PricingStrategy = "variant"
	PricingSize    PricingStrategy = "size"
	PricingPotato  PricingStrategy = "potato"
	PricingSweet   PricingStrategy = "sweet"
)

func (p Product) PricingStrategy() (PricingStrategy, error) {
	found := make([]PricingStrategy, 0, 1)
	if len(p.Variants) > 0 {
		found = append(found, PricingVariant)
	}
	if p.SizeGroupKey != "" {
		found = append(found, PricingSize)
	}
	if len(p.PotatoOptions) > 0 {
		found = append(found, PricingPotato)
	}
	if p.IsSweetVariant && len(p.SweetOptions) > 0 {
		found = append(found, PricingSweet)
	}

	switch len(found) {
	case 0:
		return PricingBase, nil
	case 1:
		return found[0], nil
	default:
		return "", ErrMultiplePricing
	}
}

func (p Product) SauceLimit() int {
	if p.MaxSauces > 0 {
		return p.MaxSauces
	}
	return DefaultMaxSauces
}

func (p Product) IsSweet() bool {
	return p.Category == CategoryBurger && p.IsSweetVariant
}

// AcceptsSauces reports whether the sauce picker applies to the product.
func (p Product) AcceptsSauces() bool {
	return p.Category == CategoryBurger && !p.IsSweet() && len(p.AvailableSauces) > 0
}

// AcceptsTrio reports whether the trio upsell can be attached.
func (p Product) AcceptsTrio() bool {
	return p.Category == CategoryBurger && !p.IsSweet()
}

func (p Product) HasSauce(name string) bool {
	for _, s := range p.AvailableSauces {
		if s == name {
			return true
		}
	}
	return false
}

func (p Product) FindVariant(name string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// FirstAvailableVariant returns the first variant not marked unavailable.
func (p Product) FirstAvailableVariant() (Variant, bool) {
	for _, v := range p.Variants {
		if !v.Unavailable {
			return v, true
		}
	}
	return Variant{}, false
}

func (p Product) FindPotatoOption(name string) (PotatoOption, bool) {
	for _, o := range p.PotatoOptions {
		if o.Name == name {
			return o, true
		}
	}
	return PotatoOption{}, false
}

func (p Product) FindSweetOption(name string) (SweetOption, bool) {
	for _, o := range p.SweetOptions {
		if o.Name == name {
			return o, true
		}
	}
	return SweetOption{}, false
}
