package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidDeliveryType = errors.New("invalid delivery type")

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

func (d DeliveryType) IsValid() bool {
	return d == DeliveryPickup || d == DeliveryDelivery
}

// AppliedDiscount is the discount amount fixed at the moment a coupon was accepted.
type AppliedDiscount struct {
	Code   string
	Amount decimal.Decimal
}

type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// Cart keeps lines in insertion order. Identical configurations stay separate lines.
type Cart struct {
	lines    []Line
	delivery DeliveryType
	discount *AppliedDiscount
}

func NewCart() *Cart {
	return &Cart{delivery: DeliveryPickup}
}

func (c *Cart) Add(line Line) int {
	c.lines = append(c.lines, line)
	return len(c.lines) - 1
}

func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// SetQuantity ignores n < 1.
func (c *Cart) SetQuantity(index, n int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	if n < 1 {
		return nil
	}
	c.lines[index] = c.lines[index].withQuantity(n)
	return nil
}

func (c *Cart) Line(index int) (Line, error) {
	if index < 0 || index >= len(c.lines) {
		return Line{}, ErrLineNotFound
	}
	return c.lines[index], nil
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int      { return len(c.lines) }
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) Clear() {
	c.lines = nil
	c.discount = nil
}

func (c *Cart) Delivery() DeliveryType { return c.delivery }

func (c *Cart) SetDelivery(d DeliveryType) error {
	if !d.IsValid() {
		return ErrInvalidDeliveryType
	}
	c.delivery = d
	return nil
}

func (c *Cart) ApplyDiscount(code string, amount decimal.Decimal) {
	c.discount = &AppliedDiscount{Code: code, Amount: amount.Round(2)}
}

func (c *Cart) ClearDiscount() { c.discount = nil }

func (c *Cart) Discount() (AppliedDiscount, bool) {
	if c.discount == nil {
		return AppliedDiscount{}, false
	}
	return *c.discount, true
}

func (c *Cart) Subtotal(calc PriceCalculator) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(calc.LinePrice(l))
	}
	return sum
}

// Totals never floors the result; a discount larger than the subtotal yields a negative total.
func (c *Cart) Totals(calc PriceCalculator, deliveryFee decimal.Decimal) Totals {
	t := Totals{
		Subtotal:    c.Subtotal(calc),
		DeliveryFee: decimal.Zero,
		Discount:    decimal.Zero,
	}
	if c.delivery == DeliveryDelivery {
		t.DeliveryFee = deliveryFee
	}
	if c.discount != nil {
		t.Discount = c.discount.Amount
	}
	t.Total = t.Subtotal.Add(t.DeliveryFee).Sub(t.Discount)
	return t
}

// Clone returns an independent copy for stores handing carts across requests.
func (c *Cart) Clone() *Cart {
	out := &Cart{
		lines:    c.Lines(),
		delivery: c.delivery,
	}
	if c.discount != nil {
		d := *c.discount
		out.discount = &d
	}
	return out
}
