package coupon

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidMaxUses = errors.New("max uses must be at least 1")

type Coupon struct {
	code          Code
	discount      Discount
	maxUses       int
	validUntil    time.Time
	minOrderValue *decimal.Decimal
	description   string
}

func NewCoupon(
	code string,
	discount Discount,
	maxUses int,
	validUntil time.Time,
	minOrderValue *decimal.Decimal,
	description string,
) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}
	if maxUses < 1 {
		return nil, ErrInvalidMaxUses
	}
	if minOrderValue != nil && minOrderValue.IsNegative() {
		return nil, ErrInvalidDiscountAmount
	}

	return &Coupon{
		code:          couponCode,
		discount:      discount,
		maxUses:       maxUses,
		validUntil:    validUntil,
		minOrderValue: minOrderValue,
		description:   description,
	}, nil
}

func (c *Coupon) IsExpiredAt(t time.Time) bool {
	return t.After(c.validUntil)
}

func (c *Coupon) MeetsMinimum(subtotal decimal.Decimal) bool {
	if c.minOrderValue == nil {
		return true
	}
	return !subtotal.LessThan(*c.minOrderValue)
}

func (c *Coupon) IsExhausted(rec UsageRecord) bool {
	return rec.UseCount >= c.maxUses
}

func (c *Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	return c.discount.Amount(subtotal)
}

func (c *Coupon) Code() Code                      { return c.code }
func (c *Coupon) Discount() Discount              { return c.discount }
func (c *Coupon) MaxUses() int                    { return c.maxUses }
func (c *Coupon) ValidUntil() time.Time           { return c.validUntil }
func (c *Coupon) MinOrderValue() *decimal.Decimal { return c.minOrderValue }
func (c *Coupon) Description() string             { return c.description }

// UsageRecord is the persisted counter for one code.
type UsageRecord struct {
	Code       Code
	UseCount   int
	LastUsedAt time.Time
}

func (r UsageRecord) Next(at time.Time) UsageRecord {
	return UsageRecord{Code: r.Code, UseCount: r.UseCount + 1, LastUsedAt: at}
}
