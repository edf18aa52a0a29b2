package response

import (
	"time"

	"nabrasa-storefront/internal/usecase/commands"
	"nabrasa-storefront/internal/usecase/queries"
)

type LineResponse struct {
	Index        int      `json:"index"`
	ProductID    string   `json:"product_id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Quantity     int      `json:"quantity"`
	Size         string   `json:"size,omitempty"`
	Variant      string   `json:"variant,omitempty"`
	PotatoOption string   `json:"potato_option,omitempty"`
	SweetOption  string   `json:"sweet_option,omitempty"`
	Sauces       []string `json:"sauces"`
	ExtraSauces  int      `json:"extra_sauces"`
	SauceFee     string   `json:"sauce_fee"`
	IsTrio       bool     `json:"is_trio"`
	TrioDrink    string   `json:"trio_drink,omitempty"`
	Note         string   `json:"note,omitempty"`
	UnitPrice    string   `json:"unit_price"`
	LinePrice    string   `json:"line_price"`
}

type NoticeResponse struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type CartResponse struct {
	SessionID   string           `json:"session_id"`
	Lines       []LineResponse   `json:"lines"`
	ItemCount   int              `json:"item_count"`
	Delivery    string           `json:"delivery"`
	CouponCode  string           `json:"coupon_code,omitempty"`
	Subtotal    string           `json:"subtotal"`
	DeliveryFee string           `json:"delivery_fee"`
	Discount    string           `json:"discount"`
	Total       string           `json:"total"`
	Notices     []NoticeResponse `json:"notices"`
}

type AddLineResponse struct {
	Index int           `json:"index"`
	Cart  *CartResponse `json:"cart"`
}

type CouponResponse struct {
	Code     string        `json:"code"`
	Valid    bool          `json:"valid"`
	Outcome  string        `json:"outcome"`
	Message  string        `json:"message"`
	Discount string        `json:"discount"`
	Cart     *CartResponse `json:"cart"`
}

type TotalsResponse struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"delivery_fee"`
	Discount    string `json:"discount"`
	Total       string `json:"total"`
}

type CheckoutResponse struct {
	ExternalID string         `json:"external_id"`
	Message    string         `json:"message"`
	DeepLink   string         `json:"deep_link"`
	CouponCode string         `json:"coupon_code,omitempty"`
	Totals     TotalsResponse `json:"totals"`
	Dispatched bool           `json:"dispatched"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	out := &CartResponse{}
	copyFrom(out, v)
	if out.Lines == nil {
		out.Lines = []LineResponse{}
	}
	if out.Notices == nil {
		out.Notices = []NoticeResponse{}
	}
	return out
}

func FromAddLineResult(r *commands.AddLineResult) *AddLineResponse {
	return &AddLineResponse{Index: r.Index, Cart: FromCartView(r.Cart)}
}

func FromCouponResult(r *commands.CouponResult) *CouponResponse {
	return &CouponResponse{
		Code:     r.Code,
		Valid:    r.Valid,
		Outcome:  r.Outcome,
		Message:  r.Message,
		Discount: Money(r.Discount),
		Cart:     FromCartView(r.Cart),
	}
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		ExternalID: r.ExternalID,
		Message:    r.Message,
		DeepLink:   r.DeepLink,
		CouponCode: r.CouponCode,
		Totals: TotalsResponse{
			Subtotal:    Money(r.Totals.Subtotal),
			DeliveryFee: Money(r.Totals.DeliveryFee),
			Discount:    Money(r.Totals.Discount),
			Total:       Money(r.Totals.Total),
		},
		Dispatched: r.Dispatched,
	}
}
