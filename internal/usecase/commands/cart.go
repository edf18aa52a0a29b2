package commands

import (
	"context"
	"strings"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/domain/configuration"
	"nabrasa-storefront/internal/domain/coupon"
	"nabrasa-storefront/internal/pkg/config"
	"nabrasa-storefront/internal/pkg/errs"
	"nabrasa-storefront/internal/usecase/queries"
	"nabrasa-storefront/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type LineRequest struct {
	ProductID    string
	Quantity     int
	Size         string
	Variant      string
	PotatoOption string
	SweetOption  string
	Sauces       []string
	Trio         bool
	TrioDrink    string
	Note         string
}

func (r LineRequest) toConfiguration() configuration.Request {
	return configuration.Request{
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		Size:         r.Size,
		Variant:      r.Variant,
		PotatoOption: r.PotatoOption,
		SweetOption:  r.SweetOption,
		Sauces:       r.Sauces,
		Trio:         r.Trio,
		TrioDrink:    r.TrioDrink,
		Note:         r.Note,
	}
}

type AddLineResult struct {
	Index int
	Cart  *queries.CartView
}

type CouponResult struct {
	Code     string
	Valid    bool
	Outcome  string
	Message  string
	Discount decimal.Decimal
	Cart     *queries.CartView
}

// CouponValidator is the part of coupon.Validator the cart relies on.
type CouponValidator interface {
	Preview(ctx context.Context, raw string, subtotal decimal.Decimal) (coupon.Result, error)
	Redeem(ctx context.Context, raw string, subtotal decimal.Decimal) (coupon.Result, error)
	Validate(ctx context.Context, raw string, subtotal decimal.Decimal) (coupon.Result, error)
}

type CartCommands interface {
	PreviewLine(ctx context.Context, req LineRequest) (*queries.PreviewView, error)
	AddLine(ctx context.Context, sessionID string, req LineRequest) (*AddLineResult, error)
	RemoveLine(ctx context.Context, sessionID string, index int) (*queries.CartView, error)
	SetQuantity(ctx context.Context, sessionID string, index, quantity int) (*queries.CartView, error)
	SetDelivery(ctx context.Context, sessionID string, delivery string) (*queries.CartView, error)
	Clear(ctx context.Context, sessionID string) (*queries.CartView, error)
	ApplyCoupon(ctx context.Context, sessionID string, code string) (*CouponResult, error)
}

type cartUseCaseImpl struct {
	resolver  *configuration.Resolver
	sessions  shared.SessionStore
	validator CouponValidator
	pricing   shared.Pricing
	couponCfg config.CouponConfig
}

func NewCartUseCase(
	resolver *configuration.Resolver,
	sessions shared.SessionStore,
	validator CouponValidator,
	pricing shared.Pricing,
	couponCfg config.CouponConfig,
) CartCommands {
	return &cartUseCaseImpl{
		resolver:  resolver,
		sessions:  sessions,
		validator: validator,
		pricing:   pricing,
		couponCfg: couponCfg,
	}
}

func (uc *cartUseCaseImpl) PreviewLine(_ context.Context, req LineRequest) (*queries.PreviewView, error) {
	draft, err := uc.resolver.Configure(req.toConfiguration())
	if err != nil {
		return nil, classify(err)
	}

	p := draft.Preview(uc.pricing.Calculator)
	view := &queries.PreviewView{
		ProductID:   draft.Product().ID,
		Name:        draft.DisplayName(),
		Quantity:    draft.Quantity(),
		UnitPrice:   p.UnitPrice,
		LinePrice:   p.LinePrice,
		ExtraSauces: p.ExtraSauces,
		SauceFee:    p.SauceFee,
		Missing:     make([]queries.RequirementView, 0, len(p.Missing)),
		Complete:    p.Complete(),
	}
	for _, m := range p.Missing {
		view.Missing = append(view.Missing, queries.RequirementView{Field: string(m), Message: m.UserMessage()})
	}
	return view, nil
}

func (uc *cartUseCaseImpl) AddLine(ctx context.Context, sessionID string, req LineRequest) (*AddLineResult, error) {
	draft, err := uc.resolver.Configure(req.toConfiguration())
	if err != nil {
		return nil, classify(err)
	}
	line, err := draft.Commit()
	if err != nil {
		return nil, classify(err)
	}

	res := &AddLineResult{}
	err = uc.mutate(ctx, sessionID, func(s *shared.Session) error {
		res.Index = s.Cart.Add(line)
		res.Cart = queries.BuildCartView(sessionID, s.Cart, nil, uc.pricing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *cartUseCaseImpl) RemoveLine(ctx context.Context, sessionID string, index int) (*queries.CartView, error) {
	return uc.update(ctx, sessionID, func(c *cart.Cart) error {
		return c.Remove(index)
	})
}

// SetQuantity ignores quantities below one, matching the storefront's stepper.
func (uc *cartUseCaseImpl) SetQuantity(ctx context.Context, sessionID string, index, quantity int) (*queries.CartView, error) {
	return uc.update(ctx, sessionID, func(c *cart.Cart) error {
		return c.SetQuantity(index, quantity)
	})
}

func (uc *cartUseCaseImpl) SetDelivery(ctx context.Context, sessionID string, delivery string) (*queries.CartView, error) {
	return uc.update(ctx, sessionID, func(c *cart.Cart) error {
		return c.SetDelivery(cart.DeliveryType(strings.TrimSpace(delivery)))
	})
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, sessionID string) (*queries.CartView, error) {
	return uc.update(ctx, sessionID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

// ApplyCoupon fixes the discount amount against the current subtotal. A rejected
// code clears whatever discount was applied before. With redeem-on-checkout the
// use is only checked here and consumed at submission.
func (uc *cartUseCaseImpl) ApplyCoupon(ctx context.Context, sessionID string, code string) (*CouponResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, classify(coupon.ErrEmptyCouponCode)
	}

	out := &CouponResult{}
	err := uc.mutate(ctx, sessionID, func(s *shared.Session) error {
		subtotal := s.Cart.Subtotal(uc.pricing.Calculator)

		check := uc.validator.Validate
		if uc.couponCfg.RedeemOnCheckout {
			check = uc.validator.Preview
		}
		res, err := check(ctx, code, subtotal)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}

		if res.Valid() {
			s.Cart.ApplyDiscount(res.Code.String(), res.Discount)
		} else {
			s.Cart.ClearDiscount()
		}

		out.Code = res.Code.String()
		out.Valid = res.Valid()
		out.Outcome = string(res.Outcome)
		out.Message = res.Message
		out.Discount = res.Discount
		out.Cart = queries.BuildCartView(sessionID, s.Cart, nil, uc.pricing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *cartUseCaseImpl) update(ctx context.Context, sessionID string, fn func(c *cart.Cart) error) (*queries.CartView, error) {
	var view *queries.CartView
	err := uc.mutate(ctx, sessionID, func(s *shared.Session) error {
		if err := fn(s.Cart); err != nil {
			return err
		}
		view = queries.BuildCartView(sessionID, s.Cart, nil, uc.pricing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (uc *cartUseCaseImpl) mutate(ctx context.Context, sessionID string, fn func(s *shared.Session) error) error {
	if err := uc.sessions.Update(ctx, sessionID, fn); err != nil {
		if errs.Is(err, errs.ErrStoreOperationFailed) {
			return errs.WithUserMessage(err, msgStoreUnavailable)
		}
		return classify(err)
	}
	return nil
}
