//go:build unit

package order_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/domain/configuration"
	"nabrasa-storefront/internal/domain/order"
	"nabrasa-storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	calc        = cart.NewDefaultPriceCalculator()
	deliveryFee = decimal.RequireFromString("4.00")
)

func commit(t *testing.T, req configuration.Request) cart.Line {
	t.Helper()
	r := configuration.NewResolver(builder.NewCatalogBuilder().MustBuild())
	d, err := r.Configure(req)
	require.NoError(t, err)
	l, err := d.Commit()
	require.NoError(t, err)
	return l
}

func snapshot() order.Snapshot {
	return order.Snapshot{
		ExternalID:     "NB-1717254000000-abcd1234",
		CatalogVersion: "test-2024.06",
		DeliveryFee:    deliveryFee,
		Now:            builder.StoreNow,
	}
}

func mixedCart(t *testing.T) *cart.Cart {
	c := cart.NewCart()
	c.Add(commit(t, configuration.Request{ProductID: builder.BurgerID, Size: "Duplo", Sauces: []string{"Bacon", "Alho", "Ervas"}}))
	c.Add(commit(t, configuration.Request{ProductID: builder.SideID, PotatoOption: "Recheada", Quantity: 2}))
	c.Add(commit(t, configuration.Request{ProductID: builder.DrinkID, Variant: "Guaraná", Quantity: 3}))
	c.Add(commit(t, configuration.Request{
		ProductID: builder.BurgerID,
		Size:      "Triplo",
		Sauces:    []string{"Bacon", "Alho", "Ervas"},
		Trio:      true,
		TrioDrink: "Coca-Cola Zero",
	}))
	c.Add(commit(t, configuration.Request{ProductID: builder.SweetBurgerID, SweetOption: "Nutella", Note: "bem quente"}))
	return c
}

func TestValidate(t *testing.T) {
	full := cart.NewCart()
	full.Add(commit(t, configuration.Request{ProductID: builder.WaterID}))

	delivery := full.Clone()
	require.NoError(t, delivery.SetDelivery(cart.DeliveryDelivery))

	tests := []struct {
		name    string
		cart    *cart.Cart
		details order.Details
		errIs   error
	}{
		{"empty cart", cart.NewCart(), order.Details{PaymentMethod: order.PaymentPix}, order.ErrEmptyCart},
		{"delivery without address", delivery, order.Details{Address: "  ", PaymentMethod: order.PaymentPix}, order.ErrAddressRequired},
		{"missing payment", full, order.Details{}, order.ErrPaymentMethodRequired},
		{"unknown payment", full, order.Details{PaymentMethod: "cheque"}, order.ErrInvalidPaymentMethod},
		{"pickup needs no address", full, order.Details{PaymentMethod: " PIX "}, nil},
		{"delivery with address", delivery, order.Details{Address: "Rua A, 10", PaymentMethod: order.PaymentCash}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := order.Validate(tt.cart, tt.details)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestMessageBuilder(t *testing.T) {
	mb := order.NewMessageBuilder("Na Brasa", "https://wa.me/", "556199133181", calc)

	t.Run("delivery order with sauce overage", func(t *testing.T) {
		c := cart.NewCart()
		c.Add(commit(t, configuration.Request{ProductID: builder.BurgerID, Size: "Duplo", Sauces: []string{"Bacon", "Alho"}}))
		require.NoError(t, c.SetDelivery(cart.DeliveryDelivery))

		o, err := order.New(c, order.Details{Address: "Rua A, 10", PaymentMethod: order.PaymentPix}, calc, snapshot())
		require.NoError(t, err)

		want := "*Pedido Na Brasa*\n\n" +
			"*1x X-Brasa* - Duplo - R$ 25.00\n" +
			"   Molhos: Bacon, Alho (1 extra - R$ 2.00)\n" +
			"\n" +
			"\n*Subtotal: R$ 25.00*\n" +
			"*Taxa de entrega: R$ 4.00*\n" +
			"*Total: R$ 29.00*\n\n" +
			"*Forma de entrega:* Entrega\n" +
			"*Endereço:* Rua A, 10\n" +
			"*Forma de pagamento:* pix\n"

		if diff := cmp.Diff(want, mb.Text(o)); diff != "" {
			t.Errorf("message mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("pickup order lines", func(t *testing.T) {
		c := cart.NewCart()
		c.Add(commit(t, configuration.Request{ProductID: builder.BurgerID, Trio: true, TrioDrink: "Guaraná", Note: "sem cebola"}))
		c.Add(commit(t, configuration.Request{ProductID: builder.DrinkID, Variant: "Guaraná"}))
		c.Add(commit(t, configuration.Request{ProductID: builder.SweetBurgerID}))
		c.ApplyDiscount("PRIMEIROPEDIDO", decimal.RequireFromString("5"))

		o, err := order.New(c, order.Details{PaymentMethod: order.PaymentCard, Note: "troco para 100", CustomerName: "Ana"}, calc, snapshot())
		require.NoError(t, err)
		text := mb.Text(o)

		assert.Contains(t, text, "*1x X-Brasa* - Simples + TRIO (Batata pequena + Guaraná lata) - R$ 25.00\n   Sem molho\n   Obs: sem cebola\n")
		assert.Contains(t, text, "*1x Guaraná* - Guaraná - R$ 6.00\n\n")
		assert.Contains(t, text, "*1x Burger Doce - Nutella* - R$ 22.00\n\n")
		assert.Contains(t, text, "*Desconto (PRIMEIROPEDIDO): -R$ 5.00*\n")
		assert.Contains(t, text, "*Total: R$ 48.00*\n\n")
		assert.Contains(t, text, "*Observações:* troco para 100\n\n")
		assert.Contains(t, text, "*Forma de entrega:* Retirar no local\n")
		assert.Contains(t, text, "*Nome:* Ana\n")
		assert.NotContains(t, text, "Taxa de entrega")
		assert.NotContains(t, text, "Endereço")
	})

	t.Run("deep link round trips the text", func(t *testing.T) {
		text := "*Pedido Na Brasa*\n\n*1x X-Brasa & Cia* - R$ 15.00 + 100% sabor?"
		link := mb.DeepLink(text)

		require.True(t, strings.HasPrefix(link, "https://wa.me/556199133181?text="))
		assert.NotContains(t, link, "+")
		assert.NotContains(t, link, " ")

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, text, u.Query().Get("text"))
	})
}

func TestPayloadBuilder(t *testing.T) {
	pb := order.NewPayloadBuilder("na-brasa", "nabrasa.com.br", decimal.NewFromInt(10), calc)

	t.Run("item unit prices match the cart for a mixed cart", func(t *testing.T) {
		c := mixedCart(t)
		o, err := order.New(c, order.Details{PaymentMethod: order.PaymentPix}, calc, snapshot())
		require.NoError(t, err)

		p, err := pb.Build(o)
		require.NoError(t, err)
		require.Len(t, p.Order.Items, 5)

		for i, l := range c.Lines() {
			want := calc.LinePrice(l).Div(decimal.NewFromInt(int64(l.Quantity()))).StringFixed(2)
			assert.Equal(t, want, p.Order.Items[i].UnitPrice.String(), "line %d", i)
			assert.Equal(t, calc.LinePrice(l).StringFixed(2), p.Order.Items[i].TotalPrice.String(), "line %d", i)
		}

		// 27 + 42 + 18 + 42 + 22
		assert.Equal(t, "151.00", p.Order.Totals.Subtotal.String())
		assert.Equal(t, "151.00", p.Order.Totals.Total.String())
	})

	t.Run("complements and envelope", func(t *testing.T) {
		c := mixedCart(t)
		o, err := order.New(c, order.Details{PaymentMethod: order.PaymentPix, CustomerName: "Ana"}, calc, snapshot())
		require.NoError(t, err)
		p, err := pb.Build(o)
		require.NoError(t, err)

		assert.Equal(t, "na-brasa", p.EstablishmentSlug)
		assert.Equal(t, "nabrasa.com.br", p.SourceDomain)
		assert.Equal(t, "NB-1717254000000-abcd1234", p.Order.ExternalID)
		assert.Equal(t, order.ChannelWhatsApp, p.Order.Channel)
		assert.Equal(t, "pix", p.Order.Payment.Method)
		assert.Equal(t, "pickup", p.Order.DeliveryType)
		assert.Equal(t, "test-2024.06", p.Order.Meta.CatalogVersion)
		assert.Len(t, p.Order.Meta.ContentHash, 64)

		trio := p.Order.Items[3].Complements
		require.NotNil(t, trio.Trio)
		assert.Equal(t, "Coca-Cola Zero", trio.Trio.Drink)
		assert.Equal(t, "Triplo", trio.Size)
		assert.Equal(t, 1, trio.ExtraSauces)

		assert.Equal(t, "Recheada", p.Order.Items[1].Complements.PotatoOption)
		assert.Equal(t, "Guaraná", p.Order.Items[2].Complements.Variant)
		assert.Equal(t, "Nutella", p.Order.Items[4].Complements.SweetOption)
		assert.Equal(t, "bem quente", p.Order.Items[4].Notes)
	})

	t.Run("money is serialized with two decimals", func(t *testing.T) {
		c := cart.NewCart()
		c.Add(commit(t, configuration.Request{ProductID: builder.WaterID}))
		o, err := order.New(c, order.Details{PaymentMethod: order.PaymentCash}, calc, snapshot())
		require.NoError(t, err)
		p, err := pb.Build(o)
		require.NoError(t, err)

		body, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"unit_price":4.00`)
		assert.Contains(t, string(body), `"estabelecimento_slug":"na-brasa"`)
	})

	t.Run("content hash ignores submission identity", func(t *testing.T) {
		c := mixedCart(t)
		s1 := snapshot()
		s2 := snapshot()
		s2.ExternalID = "NB-other"
		s2.Now = s2.Now.Add(90)

		o1, err := order.New(c, order.Details{PaymentMethod: order.PaymentPix}, calc, s1)
		require.NoError(t, err)
		o2, err := order.New(c, order.Details{PaymentMethod: order.PaymentPix}, calc, s2)
		require.NoError(t, err)

		p1, err := pb.Build(o1)
		require.NoError(t, err)
		p2, err := pb.Build(o2)
		require.NoError(t, err)
		assert.Equal(t, p1.Order.Meta.ContentHash, p2.Order.Meta.ContentHash)

		require.NoError(t, c.SetQuantity(0, 2))
		o3, err := order.New(c, order.Details{PaymentMethod: order.PaymentPix}, calc, s1)
		require.NoError(t, err)
		p3, err := pb.Build(o3)
		require.NoError(t, err)
		assert.NotEqual(t, p1.Order.Meta.ContentHash, p3.Order.Meta.ContentHash)
	})
}

func TestNewExternalID(t *testing.T) {
	a := order.NewExternalID(builder.StoreNow)
	b := order.NewExternalID(builder.StoreNow)
	assert.True(t, strings.HasPrefix(a, "NB-"))
	assert.NotEqual(t, a, b)
}
