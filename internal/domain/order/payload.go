package order

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"nabrasa-storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

const ChannelWhatsApp = "whatsapp"

type Payload struct {
	EstablishmentSlug string       `json:"estabelecimento_slug"`
	SourceDomain      string       `json:"source_domain"`
	Order             PayloadOrder `json:"order"`
}

type PayloadOrder struct {
	ExternalID   string          `json:"external_id"`
	CreatedAt    string          `json:"created_at"`
	Customer     PayloadCustomer `json:"customer"`
	Items        []PayloadItem   `json:"items"`
	Totals       PayloadTotals   `json:"totals"`
	Payment      PayloadPayment  `json:"payment"`
	Channel      string          `json:"channel"`
	DeliveryType string          `json:"delivery_type"`
	Notes        string          `json:"notes,omitempty"`
	CouponCode   string          `json:"coupon_code,omitempty"`
	Meta         PayloadMeta     `json:"meta"`
}

type PayloadCustomer struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type PayloadItem struct {
	ProductID   string             `json:"product_id"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Quantity    int                `json:"quantity"`
	UnitPrice   json.Number        `json:"unit_price"`
	TotalPrice  json.Number        `json:"total_price"`
	Notes       string             `json:"notes,omitempty"`
	Complements PayloadComplements `json:"complements"`
}

type PayloadComplements struct {
	Sauces       []string     `json:"sauces"`
	ExtraSauces  int          `json:"extra_sauces"`
	Size         string       `json:"size,omitempty"`
	Variant      string       `json:"variant,omitempty"`
	PotatoOption string       `json:"potato_option,omitempty"`
	SweetOption  string       `json:"sweet_option,omitempty"`
	Trio         *PayloadTrio `json:"trio,omitempty"`
}

type PayloadTrio struct {
	Drink string      `json:"drink"`
	Fee   json.Number `json:"fee"`
}

type PayloadTotals struct {
	Subtotal    json.Number `json:"subtotal"`
	DeliveryFee json.Number `json:"delivery_fee"`
	Discount    json.Number `json:"discount"`
	Total       json.Number `json:"total"`
}

type PayloadPayment struct {
	Method string `json:"method"`
}

type PayloadMeta struct {
	ContentHash    string `json:"content_hash"`
	CatalogVersion string `json:"catalog_version,omitempty"`
}

type PayloadBuilder struct {
	Slug         string
	SourceDomain string
	TrioFee      decimal.Decimal
	Calculator   cart.PriceCalculator
}

func NewPayloadBuilder(slug, sourceDomain string, trioFee decimal.Decimal, calc cart.PriceCalculator) *PayloadBuilder {
	return &PayloadBuilder{Slug: slug, SourceDomain: sourceDomain, TrioFee: trioFee, Calculator: calc}
}

func (b *PayloadBuilder) Build(o *Order) (Payload, error) {
	items := make([]PayloadItem, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, b.item(l))
	}

	totals := PayloadTotals{
		Subtotal:    amount(o.Totals.Subtotal),
		DeliveryFee: amount(o.Totals.DeliveryFee),
		Discount:    amount(o.Totals.Discount),
		Total:       amount(o.Totals.Total),
	}

	hash, err := ContentHash(items, totals)
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		EstablishmentSlug: b.Slug,
		SourceDomain:      b.SourceDomain,
		Order: PayloadOrder{
			ExternalID: o.ExternalID,
			CreatedAt:  o.CreatedAt.Format(time.RFC3339),
			Customer: PayloadCustomer{
				Name:    o.Details.CustomerName,
				Phone:   o.Details.CustomerPhone,
				Address: o.Details.Address,
			},
			Items:        items,
			Totals:       totals,
			Payment:      PayloadPayment{Method: string(o.Details.PaymentMethod)},
			Channel:      ChannelWhatsApp,
			DeliveryType: string(o.Delivery),
			Notes:        o.Details.Note,
			CouponCode:   o.CouponCode,
			Meta: PayloadMeta{
				ContentHash:    hash,
				CatalogVersion: o.CatalogVersion,
			},
		},
	}, nil
}

// item prices each line on its own instead of dividing the cart total.
func (b *PayloadBuilder) item(l cart.Line) PayloadItem {
	extra, _ := b.Calculator.SauceOverage(l)
	c := PayloadComplements{
		Sauces:      l.Sauces(),
		ExtraSauces: extra,
	}
	if s := l.Size(); s != nil {
		c.Size = s.Name
	}
	if v := l.Variant(); v != nil {
		c.Variant = v.Name
	}
	if p := l.PotatoOption(); p != nil {
		c.PotatoOption = p.Name
	}
	if s := l.SweetOption(); s != nil {
		c.SweetOption = s.Name
	}
	if l.IsTrioUpsell() {
		c.Trio = &PayloadTrio{Drink: l.TrioDrinkName(), Fee: amount(b.TrioFee)}
	}

	unit := b.Calculator.UnitPrice(l)
	return PayloadItem{
		ProductID:   l.ProductID(),
		Name:        l.Name(),
		Category:    string(l.Category()),
		Quantity:    l.Quantity(),
		UnitPrice:   amount(unit),
		TotalPrice:  amount(unit.Mul(decimal.NewFromInt(int64(l.Quantity())))),
		Notes:       l.Note(),
		Complements: c,
	}
}

// ContentHash identifies an order by what was ordered, independent of when or how
// often it is submitted.
func ContentHash(items []PayloadItem, totals PayloadTotals) (string, error) {
	body, err := json.Marshal(struct {
		Items  []PayloadItem `json:"items"`
		Totals PayloadTotals `json:"totals"`
	}{items, totals})
	if err != nil {
		return "", fmt.Errorf("marshal content: %w", err)
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

func amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
