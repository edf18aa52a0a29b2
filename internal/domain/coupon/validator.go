package coupon

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"nabrasa-storefront/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

// UsageStore persists per-code usage counters. Get reports found=false for a code
// that was never used.
type UsageStore interface {
	Get(ctx context.Context, code Code) (rec UsageRecord, found bool, err error)
	Set(ctx context.Context, rec UsageRecord) error
}

type Outcome string

const (
	OutcomeApplied      Outcome = "applied"
	OutcomeUnknown      Outcome = "invalid"
	OutcomeExpired      Outcome = "expired"
	OutcomeBelowMinimum Outcome = "below_minimum"
	OutcomeLimitReached Outcome = "limit_reached"
)

type Result struct {
	Code     Code
	Outcome  Outcome
	Message  string
	Discount decimal.Decimal
}

func (r Result) Valid() bool { return r.Outcome == OutcomeApplied }

const (
	msgInvalid      = "Cupom inválido"
	msgExpired      = "Cupom expirado"
	msgMinimumOrder = "Pedido mínimo de R$ %s para usar este cupom"
	msgLimitReached = "Cupom atingiu o limite máximo de uso"
	msgApplied      = "Cupom aplicado com sucesso! Desconto de %s"
)

type Validator struct {
	mu      sync.Mutex
	coupons map[Code]*Coupon
	store   UsageStore
	clock   clock.Clock
}

func NewValidator(coupons []*Coupon, store UsageStore, clk clock.Clock) *Validator {
	byCode := make(map[Code]*Coupon, len(coupons))
	for _, c := range coupons {
		byCode[c.Code()] = c
	}
	return &Validator{coupons: byCode, store: store, clock: clk}
}

func (v *Validator) Lookup(code Code) (*Coupon, bool) {
	c, ok := v.coupons[code]
	return c, ok
}

// Preview checks eligibility without consuming a use.
func (v *Validator) Preview(ctx context.Context, raw string, subtotal decimal.Decimal) (Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	res, _, _, err := v.check(ctx, raw, subtotal)
	return res, err
}

// Redeem checks eligibility and, on success only, records one use before
// returning. Applying a coupon through Redeem consumes a use whether or not the
// order is eventually submitted.
func (v *Validator) Redeem(ctx context.Context, raw string, subtotal decimal.Decimal) (Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	res, c, rec, err := v.check(ctx, raw, subtotal)
	if err != nil || !res.Valid() {
		return res, err
	}

	rec.Code = c.Code()
	if err := v.store.Set(ctx, rec.Next(v.clock.Now())); err != nil {
		return Result{}, fmt.Errorf("record coupon usage: %w", err)
	}
	return res, nil
}

// Validate is the storefront's apply-button contract: Redeem.
func (v *Validator) Validate(ctx context.Context, raw string, subtotal decimal.Decimal) (Result, error) {
	return v.Redeem(ctx, raw, subtotal)
}

func (v *Validator) check(ctx context.Context, raw string, subtotal decimal.Decimal) (Result, *Coupon, UsageRecord, error) {
	code, err := NewCouponCode(raw)
	if errors.Is(err, ErrEmptyCouponCode) {
		return Result{}, nil, UsageRecord{}, err
	}
	if err != nil {
		return rejected(Code(raw), OutcomeUnknown, msgInvalid), nil, UsageRecord{}, nil
	}

	c, ok := v.coupons[code]
	if !ok {
		return rejected(code, OutcomeUnknown, msgInvalid), nil, UsageRecord{}, nil
	}
	if c.IsExpiredAt(v.clock.Now()) {
		return rejected(code, OutcomeExpired, msgExpired), c, UsageRecord{}, nil
	}
	if !c.MeetsMinimum(subtotal) {
		msg := fmt.Sprintf(msgMinimumOrder, c.MinOrderValue().StringFixed(2))
		return rejected(code, OutcomeBelowMinimum, msg), c, UsageRecord{}, nil
	}

	rec, found, err := v.store.Get(ctx, code)
	if err != nil {
		return Result{}, nil, UsageRecord{}, fmt.Errorf("load coupon usage: %w", err)
	}
	if !found {
		rec = UsageRecord{Code: code}
	}
	if c.IsExhausted(rec) {
		return rejected(code, OutcomeLimitReached, msgLimitReached), c, rec, nil
	}

	return Result{
		Code:     code,
		Outcome:  OutcomeApplied,
		Message:  fmt.Sprintf(msgApplied, c.Discount().Label()),
		Discount: c.DiscountFor(subtotal),
	}, c, rec, nil
}

func rejected(code Code, outcome Outcome, msg string) Result {
	return Result{Code: code, Outcome: outcome, Message: msg, Discount: decimal.Zero}
}
