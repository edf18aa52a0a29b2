//go:build e2e

package storefront_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	resdto "nabrasa-storefront/internal/handler/dto/response"
	"nabrasa-storefront/internal/infra/repository"
	"nabrasa-storefront/internal/usecase/shared"
	"nabrasa-storefront/tests/common/builder"
	"nabrasa-storefront/tests/common/dbtest"
	"nabrasa-storefront/tests/common/httptest"
	"nabrasa-storefront/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL     = "/api/cart"
	linesURL    = "/api/cart/lines"
	deliveryURL = "/api/cart/delivery"
	couponURL   = "/api/cart/coupon"
	checkoutURL = "/api/cart/checkout"

	waitFor = 5 * time.Second
	tick    = 50 * time.Millisecond
)

type StorefrontSuite struct {
	e2e.SharedSuite
}

func TestStorefrontSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StorefrontSuite))
}

// fillCart adds two burger trios with one sauce and asks for delivery: (15 + 10) x 2 + 4.
func (s *StorefrontSuite) fillCart(sid string) {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, linesURL, map[string]any{
		"product_id": builder.BurgerID,
		"quantity":   2,
		"sauces":     []string{"Bacon"},
		"trio":       true,
		"trio_drink": "Guaraná",
	}, sid)
	var added resdto.AddLineResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &added)
	s.Require().NotNil(added.Cart)
	s.Equal("50.00", added.Cart.Subtotal)

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, deliveryURL, map[string]any{"delivery": "delivery"}, sid)
	var view resdto.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
	s.Equal("54.00", view.Total)
}

func (s *StorefrontSuite) applyCoupon(sid, code string) resdto.CouponResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, couponURL, map[string]any{"code": code}, sid)
	var res resdto.CouponResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return res
}

func (s *StorefrontSuite) checkout(sid string) resdto.CheckoutResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, map[string]any{
		"customer_name":  "Ana",
		"customer_phone": "61999990000",
		"address":        "Rua das Flores, 10",
		"payment_method": "pix",
	}, sid)
	var res resdto.CheckoutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	httptest.AssertHeaders(s.T(), w, map[string]string{"Cache-Control": "no-store"})
	return res
}

func (s *StorefrontSuite) TestCheckoutWithCoupon() {
	sid := uuid.NewString()
	dispatches := repository.NewDispatchLogRepository(s.DB, slog.Default())

	s.Run("coupon is redeemed when applied", func() {
		s.fillCart(sid)

		res := s.applyCoupon(sid, "primeiropedido")
		s.True(res.Valid, res.Message)
		s.Equal("PRIMEIROPEDIDO", res.Code)
		s.Equal("5.00", res.Discount)
		s.Require().NotNil(res.Cart)
		s.Equal("49.00", res.Cart.Total)
		s.Equal(1, dbtest.CouponUseCount(s.T(), s.DB, "PRIMEIROPEDIDO"))
	})

	var externalID string
	s.Run("checkout builds the order and delivers it to the intake", func() {
		res := s.checkout(sid)
		externalID = res.ExternalID

		s.True(res.Dispatched)
		s.Equal("PRIMEIROPEDIDO", res.CouponCode)
		want := resdto.TotalsResponse{Subtotal: "50.00", DeliveryFee: "4.00", Discount: "5.00", Total: "49.00"}
		s.Empty(cmp.Diff(want, res.Totals))
		s.Contains(res.DeepLink, "https://wa.me/"+s.Config.Storefront.ChatRecipient+"?text=")

		s.Require().Eventually(func() bool {
			got, err := dispatches.FindByExternalID(context.Background(), externalID)
			return err == nil && got.Status == shared.DispatchDelivered
		}, waitFor, tick)

		got, err := dispatches.FindByExternalID(context.Background(), externalID)
		s.Require().NoError(err)
		s.Equal("ord-1", got.OrderID)
		s.True(got.PrintQueued)
		s.Equal(1, got.Attempts)

		reqs := s.Intake.Requests()
		s.Require().Len(reqs, 1)
		s.NotEmpty(reqs[0].IdempotencyKey)
		s.Equal("e2e-key", reqs[0].APIKey)
		order, ok := reqs[0].Body["order"].(map[string]any)
		s.Require().True(ok, "payload without order")
		s.Equal(externalID, order["external_id"])
		s.Equal("PRIMEIROPEDIDO", order["coupon_code"])
		s.Equal(s.Config.Storefront.Slug, reqs[0].Body["estabelecimento_slug"])
	})

	s.Run("cart is empty after checkout", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, sid)
		var view resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Empty(view.Lines)
		s.Empty(view.CouponCode)
		s.Empty(view.Notices)
	})

	s.Run("single use coupon is exhausted for the next customer", func() {
		other := uuid.NewString()
		s.fillCart(other)

		res := s.applyCoupon(other, "PRIMEIROPEDIDO")
		s.False(res.Valid)
		s.Equal("limit_reached", res.Outcome)
		s.NotEmpty(res.Message)
		s.Equal(1, dbtest.CouponUseCount(s.T(), s.DB, "PRIMEIROPEDIDO"))
	})
}

func (s *StorefrontSuite) TestCheckoutIntakeFailure() {
	sid := uuid.NewString()
	s.Intake.SetStatus(http.StatusServiceUnavailable)
	s.fillCart(sid)

	res := s.checkout(sid)
	s.True(res.Dispatched)
	s.Equal("54.00", res.Totals.Total)

	dispatches := repository.NewDispatchLogRepository(s.DB, slog.Default())
	s.Require().Eventually(func() bool {
		got, err := dispatches.FindByExternalID(context.Background(), res.ExternalID)
		return err == nil && got.Status == shared.DispatchFailed
	}, waitFor, tick)

	got, err := dispatches.FindByExternalID(context.Background(), res.ExternalID)
	s.Require().NoError(err)
	s.Contains(got.LastError, "503")

	// the failure is reported once on the next cart read
	var notices []resdto.NoticeResponse
	s.Require().Eventually(func() bool {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, sid)
		var view resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		notices = view.Notices
		return len(notices) > 0
	}, waitFor, tick)
	s.Require().Len(notices, 1)
	s.Equal(string(shared.NoticeDispatchFailed), notices[0].Kind)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, sid)
	var view resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	s.Empty(view.Notices)
}

func (s *StorefrontSuite) TestCheckoutEmptyCart() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, map[string]any{}, uuid.NewString())
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")

	s.Empty(s.Intake.Requests())
}
