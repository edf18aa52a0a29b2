package order

import (
	"errors"
	"strings"
	"time"

	"nabrasa-storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrAddressRequired       = errors.New("delivery address is required")
	ErrPaymentMethodRequired = errors.New("payment method is required")
	ErrInvalidPaymentMethod  = errors.New("unknown payment method")
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "dinheiro"
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "cartao"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentPix, PaymentCard:
		return true
	default:
		return false
	}
}

// Details is the checkout metadata collected next to the cart.
type Details struct {
	CustomerName  string
	CustomerPhone string
	Address       string
	PaymentMethod PaymentMethod
	Note          string
}

func (d Details) normalized() Details {
	return Details{
		CustomerName:  strings.TrimSpace(d.CustomerName),
		CustomerPhone: strings.TrimSpace(d.CustomerPhone),
		Address:       strings.TrimSpace(d.Address),
		PaymentMethod: PaymentMethod(strings.ToLower(strings.TrimSpace(string(d.PaymentMethod)))),
		Note:          strings.TrimSpace(d.Note),
	}
}

// Validate checks in the order the customer is prompted: items, address, payment.
func Validate(c *cart.Cart, d Details) error {
	d = d.normalized()
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	if c.Delivery() == cart.DeliveryDelivery && d.Address == "" {
		return ErrAddressRequired
	}
	if d.PaymentMethod == "" {
		return ErrPaymentMethodRequired
	}
	if !d.PaymentMethod.IsValid() {
		return ErrInvalidPaymentMethod
	}
	return nil
}

// Order is the checkout snapshot. It is built once and only serialized.
type Order struct {
	ExternalID     string
	CreatedAt      time.Time
	CatalogVersion string
	Lines          []cart.Line
	Delivery       cart.DeliveryType
	Details        Details
	CouponCode     string
	Totals         cart.Totals
}

func (o *Order) IsDelivery() bool { return o.Delivery == cart.DeliveryDelivery }

type Snapshot struct {
	ExternalID     string
	CatalogVersion string
	DeliveryFee    decimal.Decimal
	Now            time.Time
}

func New(c *cart.Cart, d Details, calc cart.PriceCalculator, snap Snapshot) (*Order, error) {
	if err := Validate(c, d); err != nil {
		return nil, err
	}

	o := &Order{
		ExternalID:     snap.ExternalID,
		CreatedAt:      snap.Now,
		CatalogVersion: snap.CatalogVersion,
		Lines:          c.Lines(),
		Delivery:       c.Delivery(),
		Details:        d.normalized(),
		Totals:         c.Totals(calc, snap.DeliveryFee),
	}
	if disc, ok := c.Discount(); ok {
		o.CouponCode = disc.Code
	}
	return o, nil
}
