package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Catalog is one versioned, read-only menu snapshot.
type Catalog struct {
	version      string
	products     []Product
	byID         map[string]int
	sizeGroups   map[string][]SizeOption
	drinkOptions []DrinkOption
}

func NewCatalog(version string, products []Product, sizeGroups map[string][]SizeOption, drinkOptions []DrinkOption) (*Catalog, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at position %d has no id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if !p.Category.IsValid() {
			return nil, fmt.Errorf("product %q: invalid category %q", p.ID, p.Category)
		}
		if p.BasePrice.IsNegative() {
			return nil, fmt.Errorf("product %q: negative base price", p.ID)
		}
		if _, err := p.PricingStrategy(); err != nil {
			return nil, fmt.Errorf("product %q: %w", p.ID, err)
		}
		if p.SizeGroupKey != "" {
			group, ok := sizeGroups[p.SizeGroupKey]
			if !ok || len(group) == 0 {
				return nil, fmt.Errorf("product %q: %w %q", p.ID, ErrUnknownSizeGroup, p.SizeGroupKey)
			}
		}
		byID[p.ID] = i
	}

	for key, group := range sizeGroups {
		for _, s := range group {
			if s.PriceIncrease.LessThan(decimal.Zero) {
				return nil, fmt.Errorf("size group %q: negative price increase on %q", key, s.Name)
			}
		}
	}

	return &Catalog{
		version:      version,
		products:     products,
		byID:         byID,
		sizeGroups:   sizeGroups,
		drinkOptions: drinkOptions,
	}, nil
}

func (c *Catalog) Version() string { return c.version }

func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Product(id string) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

func (c *Catalog) SizeGroup(key string) ([]SizeOption, error) {
	group, ok := c.sizeGroups[key]
	if !ok {
		return nil, ErrUnknownSizeGroup
	}
	return group, nil
}

func (c *Catalog) SizeGroups() map[string][]SizeOption {
	out := make(map[string][]SizeOption, len(c.sizeGroups))
	for k, v := range c.sizeGroups {
		out[k] = v
	}
	return out
}

// DrinkOptions is the fixed set a trio drink is chosen from.
func (c *Catalog) DrinkOptions() []DrinkOption {
	out := make([]DrinkOption, len(c.drinkOptions))
	copy(out, c.drinkOptions)
	return out
}

func (c *Catalog) HasDrinkOption(name string) bool {
	for _, d := range c.drinkOptions {
		if d.Name == name {
			return true
		}
	}
	return false
}

func (c *Catalog) FindSize(groupKey, name string) (SizeOption, bool) {
	for _, s := range c.sizeGroups[groupKey] {
		if s.Name == name {
			return s, true
		}
	}
	return SizeOption{}, false
}
