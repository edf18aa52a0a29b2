//go:build unit || e2e

package builder

import (
	"time"

	"nabrasa-storefront/internal/domain/catalog"
	"nabrasa-storefront/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

// Product ids of the fixture menu.
const (
	BurgerID      = "1"
	SideID        = "6"
	DrinkID       = "8"
	SweetBurgerID = "4"
	WaterID       = "9"
	UnavailableID = "25"
)

var storeZone = time.FixedZone("America/Sao_Paulo", -3*60*60)

// StoreNow is a moment at which every fixture coupon is still valid.
var StoreNow = time.Date(2024, 6, 1, 12, 0, 0, 0, storeZone)

func Money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type CatalogBuilder struct {
	Version      string
	Products     []catalog.Product
	SizeGroups   map[string][]catalog.SizeOption
	DrinkOptions []catalog.DrinkOption
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		Version: "test-2024.06",
		Products: []catalog.Product{
			NewProductBuilder().Build(),
			{
				ID:          SideID,
				Name:        "Batata Frita",
				Description: "Porção de batata",
				BasePrice:   Money("16.00"),
				Category:    catalog.CategorySide,
				PotatoOptions: []catalog.PotatoOption{
					{Name: "Normal", Price: Money("16.00"), Description: "Batata frita tradicional"},
					{Name: "Recheada", Price: Money("21.00"), Description: "Com cheddar e bacon"},
				},
			},
			{
				ID:        DrinkID,
				Name:      "Refrigerante Lata",
				BasePrice: Money("5.00"),
				Category:  catalog.CategoryDrink,
				Variants: []catalog.Variant{
					{Name: "Coca-Cola", Price: Money("5.00")},
					{Name: "Fanta Uva", Price: Money("5.00"), Unavailable: true},
					{Name: "Guaraná", Price: Money("6.00")},
				},
			},
			{
				ID:             SweetBurgerID,
				Name:           "Burger Doce",
				BasePrice:      Money("20.00"),
				Category:       catalog.CategoryBurger,
				IsSweetVariant: true,
				SweetOptions: []catalog.SweetOption{
					{Name: "Nutella", Price: Money("22.00")},
					{Name: "Doce de Leite", Price: Money("20.00")},
				},
			},
			{
				ID:        WaterID,
				Name:      "Água",
				BasePrice: Money("4.00"),
				Category:  catalog.CategoryDrink,
			},
			{
				ID:            UnavailableID,
				Name:          "Onion Rings",
				BasePrice:     Money("18.00"),
				Category:      catalog.CategorySide,
				IsUnavailable: true,
			},
		},
		SizeGroups: map[string][]catalog.SizeOption{
			"group1": {
				{Name: "Simples", PriceIncrease: Money("0")},
				{Name: "Duplo", PriceIncrease: Money("8.00")},
				{Name: "Triplo", PriceIncrease: Money("15.00")},
			},
		},
		DrinkOptions: []catalog.DrinkOption{
			{Name: "Coca-Cola", Price: Money("5.00")},
			{Name: "Coca-Cola Zero", Price: Money("5.00")},
			{Name: "Guaraná", Price: Money("5.00")},
		},
	}
}

func (b *CatalogBuilder) With(mutate func(*CatalogBuilder)) *CatalogBuilder {
	mutate(b)
	return b
}

func (b *CatalogBuilder) WithProduct(p catalog.Product) *CatalogBuilder {
	b.Products = append(b.Products, p)
	return b
}

func (b *CatalogBuilder) Build() (*catalog.Catalog, error) {
	return catalog.NewCatalog(b.Version, b.Products, b.SizeGroups, b.DrinkOptions)
}

// MustBuild panics on an invalid fixture.
func (b *CatalogBuilder) MustBuild() *catalog.Catalog {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

type ProductBuilder struct {
	product catalog.Product
}

// NewProductBuilder starts from the fixture burger: 15.00, group1 sizes, four sauces.
func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{product: catalog.Product{
		ID:              BurgerID,
		Name:            "X-Brasa",
		Description:     "Pão, blend 150g, queijo",
		BasePrice:       Money("15.00"),
		ImageRef:        "/images/x-brasa.jpg",
		Category:        catalog.CategoryBurger,
		AvailableSauces: []string{"Bacon", "Alho", "Ervas", "Mostarda & Mel"},
		SizeGroupKey:    "group1",
	}}
}

func (b *ProductBuilder) With(mutate func(*catalog.Product)) *ProductBuilder {
	mutate(&b.product)
	return b
}

func (b *ProductBuilder) Build() catalog.Product {
	return b.product
}

type CouponBuilder struct {
	Code          string
	Kind          coupon.Kind
	Value         decimal.Decimal
	MaxUses       int
	ValidUntil    time.Time
	MinOrderValue *decimal.Decimal
	Description   string
}

func NewPercentageCouponBuilder() *CouponBuilder {
	minOrder := Money("100.00")
	return &CouponBuilder{
		Code:          "NABRASA10",
		Kind:          coupon.KindPercentage,
		Value:         Money("10"),
		MaxUses:       200,
		ValidUntil:    time.Date(2025, 12, 31, 23, 59, 59, 0, storeZone),
		MinOrderValue: &minOrder,
		Description:   "10% de desconto em pedidos acima de R$ 100,00",
	}
}

func NewFixedCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		Code:        "PRIMEIROPEDIDO",
		Kind:        coupon.KindFixed,
		Value:       Money("5.00"),
		MaxUses:     1,
		ValidUntil:  time.Date(2024, 12, 31, 23, 59, 59, 0, storeZone),
		Description: "R$ 5,00 de desconto no seu primeiro pedido",
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	d, err := coupon.NewDiscount(b.Kind, b.Value)
	if err != nil {
		return nil, err
	}
	return coupon.NewCoupon(b.Code, d, b.MaxUses, b.ValidUntil, b.MinOrderValue, b.Description)
}

func (b *CouponBuilder) MustBuild() *coupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

// FixtureCoupons returns NABRASA10 and PRIMEIROPEDIDO.
func FixtureCoupons() []*coupon.Coupon {
	return []*coupon.Coupon{
		NewPercentageCouponBuilder().MustBuild(),
		NewFixedCouponBuilder().MustBuild(),
	}
}
