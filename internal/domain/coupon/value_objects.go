package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCouponCode        = errors.New("coupon code is empty")
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidDiscountKind    = errors.New("discount kind must be percentage or fixed")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCouponCode upper-cases the input the way the storefront input field does.
func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return "", ErrEmptyCouponCode
	}
	if !couponCodeRegex.MatchString(code) {
		return "", ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

type Discount struct {
	kind  Kind
	value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

func NewFixedDiscount(amount decimal.Decimal) (Discount, error) {
	if amount.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: KindFixed, value: amount}, nil
}

func NewPercentageDiscount(percent decimal.Decimal) (Discount, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: KindPercentage, value: percent}, nil
}

func NewDiscount(kind Kind, value decimal.Decimal) (Discount, error) {
	switch kind {
	case KindPercentage:
		return NewPercentageDiscount(value)
	case KindFixed:
		return NewFixedDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountKind
	}
}

func (d Discount) Kind() Kind             { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }
func (d Discount) IsPercentage() bool     { return d.kind == KindPercentage }
func (d Discount) IsFixed() bool          { return d.kind == KindFixed }

// Amount is the discount for the given subtotal, rounded to cents. A fixed
// discount is flat and is not capped at the subtotal.
func (d Discount) Amount(subtotal decimal.Decimal) decimal.Decimal {
	if d.IsPercentage() {
		return subtotal.Mul(d.value).Div(hundred).Round(2)
	}
	return d.value
}

// Label renders the discount as shown to the customer, e.g. "10%" or "R$ 5.00".
func (d Discount) Label() string {
	if d.IsPercentage() {
		return d.value.String() + "%"
	}
	return "R$ " + d.value.StringFixed(2)
}
