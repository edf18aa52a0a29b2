package queries

import (
	"context"

	"nabrasa-storefront/internal/domain/catalog"
	"nabrasa-storefront/internal/pkg/errs"
)

type CatalogQueries interface {
	Catalog(ctx context.Context) (*CatalogView, error)
	Product(ctx context.Context, id string) (*ProductView, error)
}

type catalogQueriesImpl struct {
	catalog *catalog.Catalog
}

func NewCatalogQueries(c *catalog.Catalog) CatalogQueries {
	return &catalogQueriesImpl{catalog: c}
}

func (q *catalogQueriesImpl) Catalog(_ context.Context) (*CatalogView, error) {
	products := q.catalog.Products()
	view := &CatalogView{
		Version:      q.catalog.Version(),
		Products:     make([]ProductView, 0, len(products)),
		SizeGroups:   make(map[string][]SizeView),
		DrinkOptions: make([]OptionView, 0, len(q.catalog.DrinkOptions())),
	}
	for _, p := range products {
		view.Products = append(view.Products, q.productView(p))
	}
	for key, group := range q.catalog.SizeGroups() {
		view.SizeGroups[key] = sizeViews(group)
	}
	for _, d := range q.catalog.DrinkOptions() {
		view.DrinkOptions = append(view.DrinkOptions, OptionView{Name: d.Name, Price: d.Price})
	}
	return view, nil
}

func (q *catalogQueriesImpl) Product(_ context.Context, id string) (*ProductView, error) {
	p, err := q.catalog.Product(id)
	if err != nil {
		return nil, errs.WithUserMessage(errs.Mark(err, errs.ErrProductNotFound), "Produto não encontrado")
	}
	v := q.productView(p)
	return &v, nil
}

func (q *catalogQueriesImpl) productView(p catalog.Product) ProductView {
	strategy, _ := p.PricingStrategy()
	v := ProductView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		ImageRef:        p.ImageRef,
		Category:        string(p.Category),
		BasePrice:       p.BasePrice,
		PricingStrategy: string(strategy),
		AvailableSauces: append([]string{}, p.AvailableSauces...),
		SizeGroupKey:    p.SizeGroupKey,
		Sizes:           []SizeView{},
		Variants:        make([]VariantView, 0, len(p.Variants)),
		SweetOptions:    make([]OptionView, 0, len(p.SweetOptions)),
		PotatoOptions:   make([]OptionView, 0, len(p.PotatoOptions)),
		AcceptsTrio:     p.AcceptsTrio(),
		SpecialTags:     append([]string{}, p.SpecialTags...),
		IsUnavailable:   p.IsUnavailable,
	}
	if p.AcceptsSauces() {
		v.MaxSauces = p.SauceLimit()
	}
	if p.SizeGroupKey != "" {
		if group, err := q.catalog.SizeGroup(p.SizeGroupKey); err == nil {
			v.Sizes = sizeViews(group)
		}
	}
	for _, variant := range p.Variants {
		v.Variants = append(v.Variants, VariantView{Name: variant.Name, Price: variant.Price, Unavailable: variant.Unavailable})
	}
	for _, o := range p.SweetOptions {
		v.SweetOptions = append(v.SweetOptions, OptionView{Name: o.Name, Price: o.Price})
	}
	for _, o := range p.PotatoOptions {
		v.PotatoOptions = append(v.PotatoOptions, OptionView{Name: o.Name, Price: o.Price, Description: o.Description})
	}
	return v
}

func sizeViews(group []catalog.SizeOption) []SizeView {
	out := make([]SizeView, 0, len(group))
	for _, s := range group {
		out = append(out, SizeView{Name: s.Name, PriceIncrease: s.PriceIncrease})
	}
	return out
}
