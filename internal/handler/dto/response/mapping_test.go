//go:build unit

package response_test

import (
	"testing"

	resdto "nabrasa-storefront/internal/handler/dto/response"
	"nabrasa-storefront/internal/usecase/queries"
	"nabrasa-storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromCartView(t *testing.T) {
	view := &queries.CartView{
		SessionID: "s1",
		Lines: []queries.LineView{{
			Index:       0,
			ProductID:   "1",
			Name:        "X-Brasa (Duplo)",
			Category:    "burger",
			Quantity:    2,
			Size:        "Duplo",
			Sauces:      []string{"Bacon", "Alho"},
			ExtraSauces: 1,
			SauceFee:    builder.Money("2"),
			IsTrio:      true,
			TrioDrink:   "Guaraná",
			UnitPrice:   builder.Money("35"),
			LinePrice:   builder.Money("70"),
		}},
		ItemCount:   2,
		Delivery:    "delivery",
		CouponCode:  "PRIMEIROPEDIDO",
		Subtotal:    builder.Money("70"),
		DeliveryFee: builder.Money("4"),
		Discount:    builder.Money("5"),
		Total:       builder.Money("69"),
	}

	want := &resdto.CartResponse{
		SessionID: "s1",
		Lines: []resdto.LineResponse{{
			Index:       0,
			ProductID:   "1",
			Name:        "X-Brasa (Duplo)",
			Category:    "burger",
			Quantity:    2,
			Size:        "Duplo",
			Sauces:      []string{"Bacon", "Alho"},
			ExtraSauces: 1,
			SauceFee:    "2.00",
			IsTrio:      true,
			TrioDrink:   "Guaraná",
			UnitPrice:   "35.00",
			LinePrice:   "70.00",
		}},
		ItemCount:   2,
		Delivery:    "delivery",
		CouponCode:  "PRIMEIROPEDIDO",
		Subtotal:    "70.00",
		DeliveryFee: "4.00",
		Discount:    "5.00",
		Total:       "69.00",
		Notices:     []resdto.NoticeResponse{},
	}

	if diff := cmp.Diff(want, resdto.FromCartView(view)); diff != "" {
		t.Errorf("cart response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromCartView_EmptyCartKeepsArrays(t *testing.T) {
	got := resdto.FromCartView(&queries.CartView{SessionID: "s1"})
	assert.NotNil(t, got.Lines)
	assert.NotNil(t, got.Notices)
	assert.Equal(t, "0.00", got.Total)
}

func TestFromCatalogView(t *testing.T) {
	got := resdto.FromCatalogView(&queries.CatalogView{
		Version: "v1",
		Products: []queries.ProductView{{
			ID:        "8",
			Name:      "Refrigerante Lata",
			BasePrice: builder.Money("5"),
			Variants:  []queries.VariantView{{Name: "Fanta Uva", Price: builder.Money("5"), Unavailable: true}},
		}},
		SizeGroups: map[string][]queries.SizeView{
			"group1": {{Name: "Triplo", PriceIncrease: builder.Money("15")}},
		},
	})

	assert.Equal(t, "5.00", got.Products[0].BasePrice)
	assert.True(t, got.Products[0].Variants[0].Unavailable)
	assert.Equal(t, "15.00", got.SizeGroups["group1"][0].PriceIncrease)
	assert.NotNil(t, got.DrinkOptions)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "-3.50", resdto.Money(decimal.RequireFromString("-3.5")))
	assert.Equal(t, "0.10", resdto.Money(decimal.RequireFromString("0.1")))
}
