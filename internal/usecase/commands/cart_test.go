//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"nabrasa-storefront/internal/domain/catalog"
	"nabrasa-storefront/internal/domain/configuration"
	"nabrasa-storefront/internal/domain/coupon"
	"nabrasa-storefront/internal/infra/memstore"
	"nabrasa-storefront/internal/pkg/clock"
	"nabrasa-storefront/internal/pkg/config"
	"nabrasa-storefront/internal/pkg/errs"
	"nabrasa-storefront/internal/usecase/commands"
	"nabrasa-storefront/internal/usecase/shared"
	"nabrasa-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type cartFixture struct {
	catalog   *catalog.Catalog
	sessions  *memstore.SessionStore
	usage     *memstore.CouponUsageStore
	validator *coupon.Validator
	pricing   shared.Pricing
	clock     *clock.MockClock
}

func newCartFixture(c *catalog.Catalog) cartFixture {
	clk := clock.NewMockClock(builder.StoreNow)
	usage := memstore.NewCouponUsageStore()
	return cartFixture{
		catalog:   c,
		sessions:  memstore.NewSessionStore(clk, time.Hour),
		usage:     usage,
		validator: coupon.NewValidator(builder.FixtureCoupons(), usage, clk),
		pricing:   shared.NewPricing(builder.Money("10.00"), builder.Money("2.00"), builder.Money("4.00")),
		clock:     clk,
	}
}

func (f cartFixture) cartCommands(cfg config.CouponConfig) commands.CartCommands {
	return commands.NewCartUseCase(configuration.NewResolver(f.catalog), f.sessions, f.validator, f.pricing, cfg)
}

type CartCommandsTestSuite struct {
	suite.Suite
	ctx context.Context
	fx  cartFixture
	uc  commands.CartCommands
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fx = newCartFixture(builder.NewCatalogBuilder().MustBuild())
	s.uc = s.fx.cartCommands(config.CouponConfig{})
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) addBurger(sessionID string, quantity int) {
	_, err := s.uc.AddLine(s.ctx, sessionID, commands.LineRequest{ProductID: builder.BurgerID, Quantity: quantity})
	s.Require().NoError(err)
}

func (s *CartCommandsTestSuite) TestAddLine() {
	s.Run("prices size and sauce overage", func() {
		res, err := s.uc.AddLine(s.ctx, "s-add", commands.LineRequest{
			ProductID: builder.BurgerID,
			Quantity:  2,
			Size:      "Duplo",
			Sauces:    []string{"Bacon", "Alho"},
		})
		s.Require().NoError(err)

		s.Equal(0, res.Index)
		s.Require().Len(res.Cart.Lines, 1)
		line := res.Cart.Lines[0]
		s.Equal("Duplo", line.Size)
		s.Equal(1, line.ExtraSauces)
		s.True(builder.Money("25.00").Equal(line.UnitPrice), line.UnitPrice.String())
		s.True(builder.Money("50.00").Equal(line.LinePrice), line.LinePrice.String())
		s.Equal(2, res.Cart.ItemCount)
		s.True(builder.Money("50.00").Equal(res.Cart.Total))
	})

	s.Run("identical configurations stay separate lines", func() {
		s.addBurger("s-dup", 1)
		res, err := s.uc.AddLine(s.ctx, "s-dup", commands.LineRequest{ProductID: builder.BurgerID})
		s.Require().NoError(err)
		s.Equal(1, res.Index)
		s.Len(res.Cart.Lines, 2)
	})

	s.Run("missing quantity defaults to one", func() {
		res, err := s.uc.AddLine(s.ctx, "s-default", commands.LineRequest{ProductID: builder.WaterID})
		s.Require().NoError(err)
		s.Equal(1, res.Cart.Lines[0].Quantity)
	})
}

func (s *CartCommandsTestSuite) TestAddLineErrors() {
	tests := []struct {
		name    string
		req     commands.LineRequest
		mark    error
		message string
	}{
		{
			name:    "unknown product",
			req:     commands.LineRequest{ProductID: "404"},
			mark:    errs.ErrProductNotFound,
			message: "Produto não encontrado",
		},
		{
			name:    "unavailable product",
			req:     commands.LineRequest{ProductID: builder.UnavailableID},
			mark:    errs.ErrUnavailable,
			message: "Produto ou opção indisponível",
		},
		{
			name:    "unavailable variant",
			req:     commands.LineRequest{ProductID: builder.DrinkID, Variant: "Fanta Uva"},
			mark:    errs.ErrUnavailable,
			message: "Produto ou opção indisponível",
		},
		{
			name: "potato option never confirmed",
			req:  commands.LineRequest{ProductID: builder.SideID},
			mark: errs.ErrDomainValidation,
		},
		{
			name:    "unknown sauce",
			req:     commands.LineRequest{ProductID: builder.BurgerID, Sauces: []string{"Ketchup"}},
			mark:    errs.ErrDomainValidation,
			message: "Opção inválida para este produto",
		},
		{
			name: "trio without drink",
			req:  commands.LineRequest{ProductID: builder.BurgerID, Trio: true},
			mark: errs.ErrDomainValidation,
		},
		{
			name: "sauces on a sweet burger",
			req:  commands.LineRequest{ProductID: builder.SweetBurgerID, Sauces: []string{"Bacon"}},
			mark: errs.ErrDomainValidation,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res, err := s.uc.AddLine(s.ctx, "s-err", tt.req)
			s.Nil(res)
			s.Require().Error(err)
			s.True(errs.Is(err, tt.mark), "expected mark %v, got %v", tt.mark, err)
			if tt.message != "" {
				s.Equal(tt.message, errs.UserMessage(err))
			} else {
				s.NotEmpty(errs.UserMessage(err))
			}
		})
	}

	sess, err := s.fx.sessions.Get(s.ctx, "s-err")
	s.Require().NoError(err)
	s.True(sess.Cart.IsEmpty())
}

func (s *CartCommandsTestSuite) TestSauceLimit() {
	fx := newCartFixture(builder.NewCatalogBuilder().With(func(b *builder.CatalogBuilder) {
		b.Products[0].MaxSauces = 2
	}).MustBuild())
	uc := fx.cartCommands(config.CouponConfig{})

	_, err := uc.AddLine(s.ctx, "s1", commands.LineRequest{
		ProductID: builder.BurgerID,
		Sauces:    []string{"Bacon", "Alho", "Ervas"},
	})
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrCapacityExceeded))
	s.Equal("Máximo de 2 molhos", errs.UserMessage(err))
}

func (s *CartCommandsTestSuite) TestPreviewLine() {
	s.Run("incomplete side reports the missing potato choice", func() {
		view, err := s.uc.PreviewLine(s.ctx, commands.LineRequest{ProductID: builder.SideID})
		s.Require().NoError(err)
		s.False(view.Complete)
		s.Require().Len(view.Missing, 1)
		s.Equal(string(configuration.RequirePotatoOption), view.Missing[0].Field)
		s.True(builder.Money("16.00").Equal(view.UnitPrice))
	})

	s.Run("sweet option overrides the base price", func() {
		view, err := s.uc.PreviewLine(s.ctx, commands.LineRequest{ProductID: builder.SweetBurgerID, SweetOption: "Nutella", Quantity: 3})
		s.Require().NoError(err)
		s.True(view.Complete)
		s.True(builder.Money("22.00").Equal(view.UnitPrice))
		s.True(builder.Money("66.00").Equal(view.LinePrice))
	})

	s.Run("does not touch any cart", func() {
		_, err := s.uc.PreviewLine(s.ctx, commands.LineRequest{ProductID: builder.BurgerID})
		s.Require().NoError(err)
		s.Zero(s.fx.sessions.Len())
	})
}

func (s *CartCommandsTestSuite) TestLineEdits() {
	const sid = "s-edit"
	s.addBurger(sid, 1)
	s.addBurger(sid, 1)

	view, err := s.uc.SetQuantity(s.ctx, sid, 1, 3)
	s.Require().NoError(err)
	s.Equal(3, view.Lines[1].Quantity)
	s.Equal(4, view.ItemCount)

	_, err = s.uc.SetQuantity(s.ctx, sid, 5, 2)
	s.True(errs.Is(err, errs.ErrLineNotFound))

	view, err = s.uc.RemoveLine(s.ctx, sid, 0)
	s.Require().NoError(err)
	s.Require().Len(view.Lines, 1)
	s.Equal(0, view.Lines[0].Index)
	s.Equal(3, view.Lines[0].Quantity)

	_, err = s.uc.RemoveLine(s.ctx, sid, 1)
	s.True(errs.Is(err, errs.ErrLineNotFound))
	s.Equal("Item não encontrado no carrinho", errs.UserMessage(err))

	view, err = s.uc.Clear(s.ctx, sid)
	s.Require().NoError(err)
	s.Empty(view.Lines)
	s.True(view.Total.IsZero())
}

func (s *CartCommandsTestSuite) TestSetDelivery() {
	const sid = "s-delivery"
	s.addBurger(sid, 1)

	view, err := s.uc.SetDelivery(s.ctx, sid, "delivery")
	s.Require().NoError(err)
	s.Equal("delivery", view.Delivery)
	s.True(builder.Money("4.00").Equal(view.DeliveryFee))
	s.True(builder.Money("19.00").Equal(view.Total))

	_, err = s.uc.SetDelivery(s.ctx, sid, "drone")
	s.True(errs.Is(err, errs.ErrDomainValidation))

	view, err = s.uc.SetDelivery(s.ctx, sid, "pickup")
	s.Require().NoError(err)
	s.True(view.DeliveryFee.IsZero())
}

func (s *CartCommandsTestSuite) TestApplyCoupon() {
	s.Run("fixed discount", func() {
		s.addBurger("s-fixed", 1)
		res, err := s.uc.ApplyCoupon(s.ctx, "s-fixed", " primeiropedido ")
		s.Require().NoError(err)
		s.True(res.Valid)
		s.Equal("PRIMEIROPEDIDO", res.Code)
		s.True(builder.Money("5.00").Equal(res.Discount))
		s.Equal("PRIMEIROPEDIDO", res.Cart.CouponCode)
		s.True(builder.Money("10.00").Equal(res.Cart.Total))
	})

	s.Run("below minimum clears any previous discount", func() {
		res, err := s.uc.ApplyCoupon(s.ctx, "s-fixed", "NABRASA10")
		s.Require().NoError(err)
		s.False(res.Valid)
		s.Equal(string(coupon.OutcomeBelowMinimum), res.Outcome)
		s.Contains(res.Message, "100.00")
		s.Empty(res.Cart.CouponCode)
		s.True(res.Cart.Discount.IsZero())
	})

	s.Run("unknown code", func() {
		res, err := s.uc.ApplyCoupon(s.ctx, "s-unknown", "NAOEXISTE")
		s.Require().NoError(err)
		s.False(res.Valid)
		s.Equal(string(coupon.OutcomeUnknown), res.Outcome)
	})

	s.Run("empty code", func() {
		_, err := s.uc.ApplyCoupon(s.ctx, "s-empty", "   ")
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.Equal("Digite um código de cupom", errs.UserMessage(err))
	})

	s.Run("apply consumes the only use", func() {
		s.addBurger("s-second", 1)
		res, err := s.uc.ApplyCoupon(s.ctx, "s-second", "PRIMEIROPEDIDO")
		s.Require().NoError(err)
		s.False(res.Valid)
		s.Equal(string(coupon.OutcomeLimitReached), res.Outcome)
	})
}

func TestApplyCoupon_RedeemOnCheckoutOnlyPreviews(t *testing.T) {
	ctx := context.Background()
	fx := newCartFixture(builder.NewCatalogBuilder().MustBuild())
	uc := fx.cartCommands(config.CouponConfig{RedeemOnCheckout: true})

	for _, sid := range []string{"a", "b"} {
		_, err := uc.AddLine(ctx, sid, commands.LineRequest{ProductID: builder.BurgerID})
		require.NoError(t, err)
		res, err := uc.ApplyCoupon(ctx, sid, "PRIMEIROPEDIDO")
		require.NoError(t, err)
		assert.True(t, res.Valid, "session %s", sid)
	}

	rec, found, err := fx.usage.Get(ctx, "PRIMEIROPEDIDO")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, rec.UseCount)
}

func TestApplyCoupon_DiscountFixedAtApplyTime(t *testing.T) {
	ctx := context.Background()
	fx := newCartFixture(builder.NewCatalogBuilder().MustBuild())
	uc := fx.cartCommands(config.CouponConfig{})

	// 8 x 15.00 = 120.00, above the NABRASA10 minimum
	_, err := uc.AddLine(ctx, "s", commands.LineRequest{ProductID: builder.BurgerID, Quantity: 8})
	require.NoError(t, err)
	res, err := uc.ApplyCoupon(ctx, "s", "NABRASA10")
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.True(t, builder.Money("12.00").Equal(res.Discount))

	view, err := uc.SetQuantity(ctx, "s", 0, 10)
	require.NoError(t, err)
	assert.True(t, builder.Money("12.00").Equal(view.Discount))
	assert.True(t, builder.Money("138.00").Equal(view.Total))
}
