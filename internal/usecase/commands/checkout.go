package commands

import (
	"context"
	"log/slog"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/domain/order"
	"nabrasa-storefront/internal/pkg/clock"
	"nabrasa-storefront/internal/pkg/config"
	"nabrasa-storefront/internal/pkg/errs"
	"nabrasa-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	CustomerName  string
	CustomerPhone string
	Address       string
	PaymentMethod string
	Note          string
}

type CheckoutResult struct {
	ExternalID string
	Message    string
	DeepLink   string
	CouponCode string
	Totals     cart.Totals
	Dispatched bool
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*CheckoutResult, error)
}

// OrderBuilders groups the per-store renderers of a submitted order.
type OrderBuilders struct {
	Message        *order.MessageBuilder
	Payload        *order.PayloadBuilder
	CatalogVersion string
}

type checkoutUseCaseImpl struct {
	sessions   shared.SessionStore
	validator  CouponValidator
	dispatcher shared.OrderDispatcher
	builders   OrderBuilders
	pricing    shared.Pricing
	couponCfg  config.CouponConfig
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCheckoutUseCase(
	sessions shared.SessionStore,
	validator CouponValidator,
	dispatcher shared.OrderDispatcher,
	builders OrderBuilders,
	pricing shared.Pricing,
	couponCfg config.CouponConfig,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		sessions:   sessions,
		validator:  validator,
		dispatcher: dispatcher,
		builders:   builders,
		pricing:    pricing,
		couponCfg:  couponCfg,
		clock:      clk,
		logger:     logger,
	}
}

// Checkout validates the cart, freezes it into an order, renders the chat
// message and deep link, empties the cart and only then queues the intake
// payload. The intake never decides the outcome of the request.
func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*CheckoutResult, error) {
	details := order.Details{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		PaymentMethod: order.PaymentMethod(req.PaymentMethod),
		Note:          req.Note,
	}

	var (
		result    *CheckoutResult
		payload   order.Payload
		rejection string
	)
	err := uc.sessions.Update(ctx, sessionID, func(s *shared.Session) error {
		c := s.Cart
		if err := order.Validate(c, details); err != nil {
			return err
		}

		reject := func(msg string) error {
			// The cart keeps its lines; only the stale discount goes.
			c.ClearDiscount()
			rejection = msg
			return nil
		}

		msg, err := uc.refreshApplied(ctx, c)
		if err != nil {
			return err
		}
		if msg != "" {
			return reject(msg)
		}

		now := uc.clock.Now()
		o, err := order.New(c, details, uc.pricing.Calculator, order.Snapshot{
			ExternalID:     order.NewExternalID(now),
			CatalogVersion: uc.builders.CatalogVersion,
			DeliveryFee:    uc.pricing.DeliveryFee,
			Now:            now,
		})
		if err != nil {
			return err
		}

		text := uc.builders.Message.Text(o)
		result = &CheckoutResult{
			ExternalID: o.ExternalID,
			Message:    text,
			DeepLink:   uc.builders.Message.DeepLink(text),
			CouponCode: o.CouponCode,
			Totals:     o.Totals,
		}

		if payload, err = uc.builders.Payload.Build(o); err != nil {
			return errs.Wrap(err, "build order payload")
		}

		// A use is only counted once nothing else can fail.
		if msg, err = uc.redeemApplied(ctx, c); err != nil {
			return err
		}
		if msg != "" {
			result = nil
			return reject(msg)
		}

		c.Clear()
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if rejection != "" {
		return nil, errs.WithUserMessage(errs.Mark(errs.New("coupon rejected at checkout"), errs.ErrCouponRejected), rejection)
	}

	result.Dispatched = uc.enqueue(ctx, sessionID, result.ExternalID, payload)
	return result, nil
}

// refreshApplied re-prices the applied coupon against the cart as it is now
// when uses are counted at checkout. It returns the customer message when the
// coupon no longer holds.
func (uc *checkoutUseCaseImpl) refreshApplied(ctx context.Context, c *cart.Cart) (string, error) {
	if !uc.couponCfg.RedeemOnCheckout {
		return "", nil
	}
	applied, ok := c.Discount()
	if !ok {
		return "", nil
	}

	res, err := uc.validator.Preview(ctx, applied.Code, c.Subtotal(uc.pricing.Calculator))
	if err != nil {
		return "", errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if !res.Valid() {
		return res.Message, nil
	}
	c.ApplyDiscount(res.Code.String(), res.Discount)
	return "", nil
}

// redeemApplied consumes the applied coupon. Another checkout may have taken
// the last use since the preview.
func (uc *checkoutUseCaseImpl) redeemApplied(ctx context.Context, c *cart.Cart) (string, error) {
	if !uc.couponCfg.RedeemOnCheckout {
		return "", nil
	}
	applied, ok := c.Discount()
	if !ok {
		return "", nil
	}

	res, err := uc.validator.Redeem(ctx, applied.Code, c.Subtotal(uc.pricing.Calculator))
	if err != nil {
		return "", errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if !res.Valid() {
		return res.Message, nil
	}
	return "", nil
}

func (uc *checkoutUseCaseImpl) enqueue(ctx context.Context, sessionID, externalID string, payload order.Payload) bool {
	job := shared.DispatchJob{
		SessionID:      sessionID,
		ExternalID:     externalID,
		IdempotencyKey: uuid.NewString(),
		Payload:        payload,
	}
	if err := uc.dispatcher.Enqueue(ctx, job); err != nil {
		uc.logger.Warn("order not queued for intake",
			slog.String("external_id", externalID),
			slog.String("idempotency_key", job.IdempotencyKey),
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
		return false
	}
	return true
}
