package configuration

import (
	"errors"
	"fmt"
	"strings"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

var (
	ErrSaucesNotAccepted   = errors.New("product does not take sauces")
	ErrUnknownSauce        = errors.New("sauce is not offered for this product")
	ErrSauceLimit          = errors.New("sauce limit reached")
	ErrNoSizeGroup         = errors.New("product has no sizes")
	ErrUnknownSize         = errors.New("unknown size")
	ErrUnknownVariant      = errors.New("unknown variant")
	ErrUnknownPotatoOption = errors.New("unknown potato option")
	ErrUnknownSweetOption  = errors.New("unknown sweet option")
	ErrTrioNotAccepted     = errors.New("product does not take the trio upsell")
	ErrTrioOff             = errors.New("trio upsell is not enabled")
	ErrUnknownDrink        = errors.New("unknown trio drink")
	ErrPotatoNotConfirmed  = errors.New("potato option must be confirmed")
)

// SauceLimitError carries the cap that rejected a sauce.
type SauceLimitError struct {
	Max int
}

func (e *SauceLimitError) Error() string { return fmt.Sprintf("sauce limit of %d reached", e.Max) }

func (e *SauceLimitError) Is(target error) bool { return target == ErrSauceLimit }

// UserMessage is the notice shown to the customer.
func (e *SauceLimitError) UserMessage() string { return fmt.Sprintf("Máximo de %d molhos", e.Max) }

type Requirement string

const (
	RequirePotatoOption Requirement = "potato_option"
	RequireTrioDrink    Requirement = "trio_drink"
	RequireVariant      Requirement = "variant"
)

func (r Requirement) UserMessage() string {
	switch r {
	case RequirePotatoOption:
		return "Selecione uma opção de batata"
	case RequireTrioDrink:
		return "Selecione um refrigerante para o trio"
	case RequireVariant:
		return "Opção indisponível"
	default:
		return string(r)
	}
}

// Draft is the configuration of one open product. Every change returns a new Draft.
type Draft struct {
	product      catalog.Product
	sizeOptions  []catalog.SizeOption
	drinkOptions []catalog.DrinkOption

	quantity  int
	sauces    []string
	size      Selection[catalog.SizeOption]
	variant   Selection[catalog.Variant]
	potato    Selection[catalog.PotatoOption]
	sweet     Selection[catalog.SweetOption]
	trio      bool
	trioDrink string
	note      string
}

func (d Draft) Product() catalog.Product                      { return d.product }
func (d Draft) Quantity() int                                 { return d.quantity }
func (d Draft) Size() Selection[catalog.SizeOption]           { return d.size }
func (d Draft) Variant() Selection[catalog.Variant]           { return d.variant }
func (d Draft) PotatoOption() Selection[catalog.PotatoOption] { return d.potato }
func (d Draft) SweetOption() Selection[catalog.SweetOption]   { return d.sweet }
func (d Draft) IsTrio() bool                                  { return d.trio }
func (d Draft) TrioDrink() string                             { return d.trioDrink }
func (d Draft) Note() string                                  { return d.note }
func (d Draft) SizeOptions() []catalog.SizeOption             { return d.sizeOptions }

func (d Draft) Sauces() []string {
	out := make([]string, len(d.sauces))
	copy(out, d.sauces)
	return out
}

func (d Draft) HasSauce(name string) bool {
	for _, s := range d.sauces {
		if s == name {
			return true
		}
	}
	return false
}

// ToggleSauce removes a selected sauce or adds an unselected one within the product's cap.
func (d Draft) ToggleSauce(name string) (Draft, error) {
	if !d.product.AcceptsSauces() {
		return d, ErrSaucesNotAccepted
	}
	if !d.product.HasSauce(name) {
		return d, ErrUnknownSauce
	}

	next := make([]string, 0, len(d.sauces)+1)
	for _, s := range d.sauces {
		if s != name {
			next = append(next, s)
		}
	}
	if len(next) == len(d.sauces) {
		if limit := d.product.SauceLimit(); len(d.sauces) >= limit {
			return d, &SauceLimitError{Max: limit}
		}
		next = append(next, name)
	}

	d.sauces = next
	return d, nil
}

func (d Draft) SelectSize(name string) (Draft, error) {
	if len(d.sizeOptions) == 0 {
		return d, ErrNoSizeGroup
	}
	for _, s := range d.sizeOptions {
		if s.Name == name {
			d.size = Confirmed(s)
			return d, nil
		}
	}
	return d, ErrUnknownSize
}

func (d Draft) SelectVariant(name string) (Draft, error) {
	v, ok := d.product.FindVariant(name)
	if !ok {
		return d, ErrUnknownVariant
	}
	if v.Unavailable {
		return d, cart.ErrVariantUnavailable
	}
	d.variant = Confirmed(v)
	return d, nil
}

func (d Draft) SelectPotatoOption(name string) (Draft, error) {
	o, ok := d.product.FindPotatoOption(name)
	if !ok {
		return d, ErrUnknownPotatoOption
	}
	d.potato = Confirmed(o)
	return d, nil
}

func (d Draft) SelectSweetOption(name string) (Draft, error) {
	o, ok := d.product.FindSweetOption(name)
	if !ok {
		return d, ErrUnknownSweetOption
	}
	d.sweet = Confirmed(o)
	return d, nil
}

// SetTrio switches the upsell. Switching it off drops the chosen drink.
func (d Draft) SetTrio(on bool) (Draft, error) {
	if on && !d.product.AcceptsTrio() {
		return d, ErrTrioNotAccepted
	}
	d.trio = on
	if !on {
		d.trioDrink = ""
	}
	return d, nil
}

func (d Draft) ToggleTrio() (Draft, error) {
	return d.SetTrio(!d.trio)
}

func (d Draft) SelectTrioDrink(name string) (Draft, error) {
	if !d.trio {
		return d, ErrTrioOff
	}
	for _, o := range d.drinkOptions {
		if o.Name == name {
			d.trioDrink = name
			return d, nil
		}
	}
	return d, ErrUnknownDrink
}

func (d Draft) SetQuantity(n int) (Draft, error) {
	if n < 1 {
		return d, cart.ErrInvalidQuantity
	}
	d.quantity = n
	return d, nil
}

func (d Draft) SetNote(note string) Draft {
	d.note = strings.TrimSpace(note)
	return d
}

// Missing lists what still blocks Commit, in the order the customer is asked for it.
func (d Draft) Missing() []Requirement {
	var missing []Requirement
	if len(d.product.Variants) > 0 {
		if v, ok := d.variant.Value(); !ok || v.Unavailable {
			missing = append(missing, RequireVariant)
		}
	}
	if len(d.product.PotatoOptions) > 0 && !d.potato.IsConfirmed() {
		missing = append(missing, RequirePotatoOption)
	}
	if d.trio && d.trioDrink == "" {
		missing = append(missing, RequireTrioDrink)
	}
	return missing
}

func (d Draft) IsComplete() bool { return len(d.Missing()) == 0 }

// Commit turns a complete draft into a cart line.
func (d Draft) Commit() (cart.Line, error) {
	for _, m := range d.Missing() {
		switch m {
		case RequireVariant:
			return cart.Line{}, cart.ErrVariantUnavailable
		case RequirePotatoOption:
			return cart.Line{}, ErrPotatoNotConfirmed
		case RequireTrioDrink:
			return cart.Line{}, cart.ErrTrioDrinkRequired
		}
	}
	return cart.NewLine(d.lineSpec())
}

type Preview struct {
	UnitPrice   decimal.Decimal
	LinePrice   decimal.Decimal
	ExtraSauces int
	SauceFee    decimal.Decimal
	Missing     []Requirement
}

func (p Preview) Complete() bool { return len(p.Missing) == 0 }

// Preview prices the draft as it stands, defaults included.
func (d Draft) Preview(calc cart.PriceCalculator) Preview {
	line := cart.DraftLine(d.lineSpec())
	extra, fee := calc.SauceOverage(line)
	return Preview{
		UnitPrice:   calc.UnitPrice(line),
		LinePrice:   calc.LinePrice(line),
		ExtraSauces: extra,
		SauceFee:    fee,
		Missing:     d.Missing(),
	}
}

func (d Draft) DisplayName() string {
	p := d.product
	switch {
	case p.Category == catalog.CategoryDrink && d.variant.IsSet():
		v, _ := d.variant.Value()
		return v.Name
	case p.IsSweet() && d.sweet.IsSet():
		o, _ := d.sweet.Value()
		return p.Name + " - " + o.Name
	case d.potato.IsSet():
		o, _ := d.potato.Value()
		return p.Name + " - " + o.Name
	default:
		return p.Name
	}
}

func (d Draft) lineSpec() cart.LineSpec {
	return cart.LineSpec{
		Product:       d.product,
		DisplayName:   d.DisplayName(),
		Quantity:      d.quantity,
		Sauces:        d.sauces,
		Variant:       d.variant.Ptr(),
		Size:          d.size.Ptr(),
		PotatoOption:  d.potato.Ptr(),
		SweetOption:   d.sweet.Ptr(),
		IsTrioUpsell:  d.trio,
		TrioDrinkName: d.trioDrink,
		Note:          d.note,
	}
}
