package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

type VariantView struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Unavailable bool            `json:"unavailable"`
}

type SizeView struct {
	Name          string          `json:"name"`
	PriceIncrease decimal.Decimal `json:"price_increase"`
}

// OptionView covers sweet, potato and drink options.
type OptionView struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

type ProductView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ImageRef        string          `json:"image_ref"`
	Category        string          `json:"category"`
	BasePrice       decimal.Decimal `json:"base_price"`
	PricingStrategy string          `json:"pricing_strategy"`
	AvailableSauces []string        `json:"available_sauces"`
	MaxSauces       int             `json:"max_sauces"`
	SizeGroupKey    string          `json:"size_group_key,omitempty"`
	Sizes           []SizeView      `json:"sizes"`
	Variants        []VariantView   `json:"variants"`
	SweetOptions    []OptionView    `json:"sweet_options"`
	PotatoOptions   []OptionView    `json:"potato_options"`
	AcceptsTrio     bool            `json:"accepts_trio"`
	SpecialTags     []string        `json:"special_tags"`
	IsUnavailable   bool            `json:"is_unavailable"`
}

type CatalogView struct {
	Version      string                `json:"version"`
	Products     []ProductView         `json:"products"`
	SizeGroups   map[string][]SizeView `json:"size_groups"`
	DrinkOptions []OptionView          `json:"drink_options"`
}

type LineView struct {
	Index        int             `json:"index"`
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Size         string          `json:"size,omitempty"`
	Variant      string          `json:"variant,omitempty"`
	PotatoOption string          `json:"potato_option,omitempty"`
	SweetOption  string          `json:"sweet_option,omitempty"`
	Sauces       []string        `json:"sauces"`
	ExtraSauces  int             `json:"extra_sauces"`
	SauceFee     decimal.Decimal `json:"sauce_fee"`
	IsTrio       bool            `json:"is_trio"`
	TrioDrink    string          `json:"trio_drink,omitempty"`
	Note         string          `json:"note,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LinePrice    decimal.Decimal `json:"line_price"`
}

type NoticeView struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type CartView struct {
	SessionID   string          `json:"session_id"`
	Lines       []LineView      `json:"lines"`
	ItemCount   int             `json:"item_count"`
	Delivery    string          `json:"delivery"`
	CouponCode  string          `json:"coupon_code,omitempty"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Notices     []NoticeView    `json:"notices"`
}

type RequirementView struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PreviewView struct {
	ProductID   string            `json:"product_id"`
	Name        string            `json:"name"`
	Quantity    int               `json:"quantity"`
	UnitPrice   decimal.Decimal   `json:"unit_price"`
	LinePrice   decimal.Decimal   `json:"line_price"`
	ExtraSauces int               `json:"extra_sauces"`
	SauceFee    decimal.Decimal   `json:"sauce_fee"`
	Missing     []RequirementView `json:"missing"`
	Complete    bool              `json:"complete"`
}
