package queries

import (
	"context"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/pkg/errs"
	"nabrasa-storefront/internal/usecase/shared"
)

type CartQueries interface {
	// View reads the cart without side effects.
	View(ctx context.Context, sessionID string) (*CartView, error)
	// ViewAndDrain also hands over pending notices, which are then forgotten.
	ViewAndDrain(ctx context.Context, sessionID string) (*CartView, error)
}

type cartQueriesImpl struct {
	sessions shared.SessionStore
	pricing  shared.Pricing
}

func NewCartQueries(sessions shared.SessionStore, pricing shared.Pricing) CartQueries {
	return &cartQueriesImpl{sessions: sessions, pricing: pricing}
}

func (q *cartQueriesImpl) View(ctx context.Context, sessionID string) (*CartView, error) {
	sess, err := q.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return BuildCartView(sessionID, sess.Cart, nil, q.pricing), nil
}

func (q *cartQueriesImpl) ViewAndDrain(ctx context.Context, sessionID string) (*CartView, error) {
	var view *CartView
	err := q.sessions.Update(ctx, sessionID, func(s *shared.Session) error {
		view = BuildCartView(sessionID, s.Cart, s.Notices, q.pricing)
		s.Notices = nil
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return view, nil
}

func BuildCartView(sessionID string, c *cart.Cart, notices []shared.Notice, pricing shared.Pricing) *CartView {
	calc := pricing.Calculator
	totals := c.Totals(calc, pricing.DeliveryFee)

	view := &CartView{
		SessionID:   sessionID,
		Lines:       make([]LineView, 0, c.Len()),
		Delivery:    string(c.Delivery()),
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Discount:    totals.Discount,
		Total:       totals.Total,
		Notices:     make([]NoticeView, 0, len(notices)),
	}
	if d, ok := c.Discount(); ok {
		view.CouponCode = d.Code
	}

	for i, l := range c.Lines() {
		view.Lines = append(view.Lines, lineView(i, l, calc))
		view.ItemCount += l.Quantity()
	}
	for _, n := range notices {
		view.Notices = append(view.Notices, NoticeView{Kind: string(n.Kind), Message: n.Message, At: n.At})
	}
	return view
}

func lineView(index int, l cart.Line, calc cart.PriceCalculator) LineView {
	extra, fee := calc.SauceOverage(l)
	v := LineView{
		Index:       index,
		ProductID:   l.ProductID(),
		Name:        l.Name(),
		Category:    string(l.Category()),
		Quantity:    l.Quantity(),
		Sauces:      l.Sauces(),
		ExtraSauces: extra,
		SauceFee:    fee,
		IsTrio:      l.IsTrioUpsell(),
		TrioDrink:   l.TrioDrinkName(),
		Note:        l.Note(),
		UnitPrice:   calc.UnitPrice(l),
		LinePrice:   calc.LinePrice(l),
	}
	if s := l.Size(); s != nil {
		v.Size = s.Name
	}
	if vr := l.Variant(); vr != nil {
		v.Variant = vr.Name
	}
	if p := l.PotatoOption(); p != nil {
		v.PotatoOption = p.Name
	}
	if s := l.SweetOption(); s != nil {
		v.SweetOption = s.Name
	}
	return v
}
