package catalogfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"nabrasa-storefront/internal/domain/catalog"
	"nabrasa-storefront/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

//go:embed data/catalog.json
var embedded []byte

type fileCoupon struct {
	Code          string           `json:"code"`
	Type          coupon.Kind      `json:"type"`
	Discount      decimal.Decimal  `json:"discount"`
	MaxUses       int              `json:"max_uses"`
	ValidUntil    time.Time        `json:"valid_until"`
	MinOrderValue *decimal.Decimal `json:"min_order_value,omitempty"`
	Description   string           `json:"description"`
}

type file struct {
	Version      string                          `json:"version"`
	Products     []catalog.Product               `json:"products"`
	SizeGroups   map[string][]catalog.SizeOption `json:"size_groups"`
	DrinkOptions []catalog.DrinkOption           `json:"drink_options"`
	Coupons      []fileCoupon                    `json:"coupons"`
}

// Snapshot is the versioned menu and coupon list the service runs with.
type Snapshot struct {
	Catalog *catalog.Catalog
	Coupons []*coupon.Coupon
}

// Load reads path, or the embedded snapshot when path is empty.
func Load(path string) (*Snapshot, error) {
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Snapshot, error) {
	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if f.Version == "" {
		return nil, fmt.Errorf("catalog has no version")
	}

	cat, err := catalog.NewCatalog(f.Version, f.Products, f.SizeGroups, f.DrinkOptions)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	coupons := make([]*coupon.Coupon, 0, len(f.Coupons))
	for _, fc := range f.Coupons {
		c, err := toCoupon(fc)
		if err != nil {
			return nil, fmt.Errorf("coupon %q: %w", fc.Code, err)
		}
		coupons = append(coupons, c)
	}

	return &Snapshot{Catalog: cat, Coupons: coupons}, nil
}

func toCoupon(fc fileCoupon) (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(fc.Type, fc.Discount)
	if err != nil {
		return nil, err
	}
	return coupon.NewCoupon(fc.Code, discount, fc.MaxUses, fc.ValidUntil, fc.MinOrderValue, fc.Description)
}
