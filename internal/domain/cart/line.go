package cart

import (
	"errors"
	"strings"

	"nabrasa-storefront/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrTrioDrinkRequired  = errors.New("trio upsell requires a drink")
	ErrPotatoRequired     = errors.New("potato option must be selected")
	ErrVariantUnavailable = errors.New("variant is unavailable")
	ErrLineNotFound       = errors.New("cart line not found")
)

// LineSpec carries everything a committed configuration hands to the cart.
type LineSpec struct {
	Product       catalog.Product
	DisplayName   string
	Quantity      int
	Sauces        []string
	Variant       *catalog.Variant
	Size          *catalog.SizeOption
	PotatoOption  *catalog.PotatoOption
	SweetOption   *catalog.SweetOption
	IsTrioUpsell  bool
	TrioDrinkName string
	Note          string
}

// Line is one configured product instance. Pricing-relevant product fields are
// snapshotted when the line is created.
type Line struct {
	productID     string
	name          string
	category      catalog.Category
	basePrice     decimal.Decimal
	isSweet       bool
	acceptsSauces bool
	quantity      int
	sauces        []string
	variant       *catalog.Variant
	size          *catalog.SizeOption
	potatoOption  *catalog.PotatoOption
	sweetOption   *catalog.SweetOption
	isTrio        bool
	trioDrink     string
	note          string
}

func NewLine(spec LineSpec) (Line, error) {
	if spec.Product.IsUnavailable {
		return Line{}, catalog.ErrProductUnavailable
	}
	if spec.Quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if spec.IsTrioUpsell && strings.TrimSpace(spec.TrioDrinkName) == "" {
		return Line{}, ErrTrioDrinkRequired
	}
	if len(spec.Product.PotatoOptions) > 0 && spec.PotatoOption == nil {
		return Line{}, ErrPotatoRequired
	}
	if spec.Variant != nil && spec.Variant.Unavailable {
		return Line{}, ErrVariantUnavailable
	}
	return DraftLine(spec), nil
}

// DraftLine builds a line without commit checks so an incomplete configuration
// can still be priced.
func DraftLine(spec LineSpec) Line {
	name := spec.DisplayName
	if name == "" {
		name = spec.Product.Name
	}

	sauces := make([]string, len(spec.Sauces))
	copy(sauces, spec.Sauces)

	trioDrink := ""
	if spec.IsTrioUpsell {
		trioDrink = spec.TrioDrinkName
	}

	return Line{
		productID:     spec.Product.ID,
		name:          name,
		category:      spec.Product.Category,
		basePrice:     spec.Product.BasePrice,
		isSweet:       spec.Product.IsSweet(),
		acceptsSauces: spec.Product.AcceptsSauces(),
		quantity:      spec.Quantity,
		sauces:        sauces,
		variant:       cloneOf(spec.Variant),
		size:          cloneOf(spec.Size),
		potatoOption:  cloneOf(spec.PotatoOption),
		sweetOption:   cloneOf(spec.SweetOption),
		isTrio:        spec.IsTrioUpsell,
		trioDrink:     trioDrink,
		note:          strings.TrimSpace(spec.Note),
	}
}

func (l Line) ProductID() string                   { return l.productID }
func (l Line) Name() string                        { return l.name }
func (l Line) Category() catalog.Category          { return l.category }
func (l Line) BasePrice() decimal.Decimal          { return l.basePrice }
func (l Line) IsSweet() bool                       { return l.isSweet }
func (l Line) AcceptsSauces() bool                 { return l.acceptsSauces }
func (l Line) Quantity() int                       { return l.quantity }
func (l Line) Variant() *catalog.Variant           { return cloneOf(l.variant) }
func (l Line) Size() *catalog.SizeOption           { return cloneOf(l.size) }
func (l Line) PotatoOption() *catalog.PotatoOption { return cloneOf(l.potatoOption) }
func (l Line) SweetOption() *catalog.SweetOption   { return cloneOf(l.sweetOption) }
func (l Line) IsTrioUpsell() bool                  { return l.isTrio }
func (l Line) TrioDrinkName() string               { return l.trioDrink }
func (l Line) Note() string                        { return l.note }

func (l Line) Sauces() []string {
	out := make([]string, len(l.sauces))
	copy(out, l.sauces)
	return out
}

func (l Line) SauceCount() int { return len(l.sauces) }

func (l Line) IsBurger() bool { return l.category == catalog.CategoryBurger }

func (l Line) withQuantity(n int) Line {
	l.quantity = n
	return l
}

func cloneOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
