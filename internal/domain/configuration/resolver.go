package configuration

import (
	"nabrasa-storefront/internal/domain/catalog"
)

type Resolver struct {
	catalog *catalog.Catalog
}

func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Open starts a draft seeded with the display defaults: first available variant,
// first size, first sweet option and first potato option. Sauces start empty and
// the trio is off.
func (r *Resolver) Open(productID string) (Draft, error) {
	p, err := r.catalog.Product(productID)
	if err != nil {
		return Draft{}, err
	}
	if p.IsUnavailable {
		return Draft{}, catalog.ErrProductUnavailable
	}

	d := Draft{
		product:      p,
		drinkOptions: r.catalog.DrinkOptions(),
		quantity:     1,
		size:         Unset[catalog.SizeOption](),
		variant:      Unset[catalog.Variant](),
		potato:       Unset[catalog.PotatoOption](),
		sweet:        Unset[catalog.SweetOption](),
	}

	if p.SizeGroupKey != "" {
		group, err := r.catalog.SizeGroup(p.SizeGroupKey)
		if err != nil {
			return Draft{}, err
		}
		d.sizeOptions = group
		d.size = Defaulted(group[0])
	}
	if v, ok := p.FirstAvailableVariant(); ok {
		d.variant = Defaulted(v)
	}
	if p.IsSweet() && len(p.SweetOptions) > 0 {
		d.sweet = Defaulted(p.SweetOptions[0])
	}
	if len(p.PotatoOptions) > 0 {
		d.potato = Defaulted(p.PotatoOptions[0])
	}

	return d, nil
}

// Request is a complete set of customer choices for one product. Empty fields keep
// the defaults seeded by Open.
type Request struct {
	ProductID    string
	Quantity     int
	Size         string
	Variant      string
	PotatoOption string
	SweetOption  string
	Sauces       []string
	Trio         bool
	TrioDrink    string
	Note         string
}

// Configure replays a request against a freshly opened draft. Selection errors
// (unknown option, sauce cap, unavailable variant) are returned as they occur;
// missing requirements are left for Commit or Preview to report.
func (r *Resolver) Configure(req Request) (Draft, error) {
	d, err := r.Open(req.ProductID)
	if err != nil {
		return Draft{}, err
	}

	if req.Quantity != 0 {
		if d, err = d.SetQuantity(req.Quantity); err != nil {
			return Draft{}, err
		}
	}
	if req.Size != "" {
		if d, err = d.SelectSize(req.Size); err != nil {
			return Draft{}, err
		}
	}
	if req.Variant != "" {
		if d, err = d.SelectVariant(req.Variant); err != nil {
			return Draft{}, err
		}
	}
	if req.SweetOption != "" {
		if d, err = d.SelectSweetOption(req.SweetOption); err != nil {
			return Draft{}, err
		}
	}
	if req.PotatoOption != "" {
		if d, err = d.SelectPotatoOption(req.PotatoOption); err != nil {
			return Draft{}, err
		}
	}
	for _, s := range req.Sauces {
		if d.HasSauce(s) {
			continue
		}
		if d, err = d.ToggleSauce(s); err != nil {
			return Draft{}, err
		}
	}
	if req.Trio {
		if d, err = d.SetTrio(true); err != nil {
			return Draft{}, err
		}
		if req.TrioDrink != "" {
			if d, err = d.SelectTrioDrink(req.TrioDrink); err != nil {
				return Draft{}, err
			}
		}
	}

	return d.SetNote(req.Note), nil
}
