package request

import (
	"nabrasa-storefront/internal/usecase/commands"
)

// LineOptions are the choices shared by preview and add-to-cart.
type LineOptions struct {
	Quantity     *int     `json:"quantity" binding:"omitempty,min=1,max=99"`
	Size         string   `json:"size"`
	Variant      string   `json:"variant"`
	PotatoOption string   `json:"potato_option"`
	SweetOption  string   `json:"sweet_option"`
	Sauces       []string `json:"sauces" binding:"omitempty,dive,required"`
	Trio         bool     `json:"trio"`
	TrioDrink    string   `json:"trio_drink"`
	Note         string   `json:"note" binding:"max=500"`
}

type AddLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	LineOptions
}

type PreviewLineRequest struct {
	LineOptions
}

type UpdateLineRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type DeliveryRequest struct {
	Delivery string `json:"delivery" binding:"required,oneof=pickup delivery"`
}

type CouponRequest struct {
	Code string `json:"code"`
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" binding:"max=120"`
	CustomerPhone string `json:"customer_phone" binding:"max=40"`
	Address       string `json:"address" binding:"max=300"`
	PaymentMethod string `json:"payment_method"`
	Note          string `json:"note" binding:"max=500"`
}

// quantity defaults to one when the client leaves it out.
func (o LineOptions) quantity() int {
	if o.Quantity == nil {
		return 1
	}
	return *o.Quantity
}

func (o LineOptions) ToCommand(productID string) commands.LineRequest {
	return commands.LineRequest{
		ProductID:    productID,
		Quantity:     o.quantity(),
		Size:         o.Size,
		Variant:      o.Variant,
		PotatoOption: o.PotatoOption,
		SweetOption:  o.SweetOption,
		Sauces:       o.Sauces,
		Trio:         o.Trio,
		TrioDrink:    o.TrioDrink,
		Note:         o.Note,
	}
}

func (r AddLineRequest) ToCommand() commands.LineRequest {
	return r.LineOptions.ToCommand(r.ProductID)
}

func (r CheckoutRequest) ToCommand() commands.CheckoutRequest {
	return commands.CheckoutRequest{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Address:       r.Address,
		PaymentMethod: r.PaymentMethod,
		Note:          r.Note,
	}
}
