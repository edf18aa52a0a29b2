//go:build unit

package cart_test

import (
	"fmt"
	"testing"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/domain/catalog"
	"nabrasa-storefront/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, spec cart.LineSpec) cart.Line {
	t.Helper()
	if spec.Quantity == 0 {
		spec.Quantity = 1
	}
	l, err := cart.NewLine(spec)
	require.NoError(t, err)
	return l
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msgAndArgs...)
}

func product(t *testing.T, id string) catalog.Product {
	t.Helper()
	p, err := builder.NewCatalogBuilder().MustBuild().Product(id)
	require.NoError(t, err)
	return p
}

func TestDefaultPriceCalculator(t *testing.T) {
	calc := cart.NewDefaultPriceCalculator()
	burger := product(t, builder.BurgerID)

	t.Run("each size adds its increase to the base price", func(t *testing.T) {
		c := builder.NewCatalogBuilder().MustBuild()
		group, err := c.SizeGroup(burger.SizeGroupKey)
		require.NoError(t, err)

		for _, size := range group {
			size := size
			l := mustLine(t, cart.LineSpec{Product: burger, Size: &size})
			assert.True(t, burger.BasePrice.Add(size.PriceIncrease).Equal(calc.UnitPrice(l)), size.Name)
		}
	})

	t.Run("sauce overage grows with the sauce count", func(t *testing.T) {
		sauces := burger.AvailableSauces
		for _, sizeName := range []string{"Simples", "Triplo"} {
			size := catalog.SizeOption{Name: sizeName, PriceIncrease: decimal.Zero}
			free := cart.FreeSauces(sizeName)
			prev := decimal.NewFromInt(-1)
			for n := 0; n <= len(sauces); n++ {
				l := mustLine(t, cart.LineSpec{Product: burger, Size: &size, Sauces: sauces[:n]})
				extra, fee := calc.SauceOverage(l)

				if n <= free {
					assert.Equal(t, 0, extra)
					assert.True(t, fee.IsZero())
				} else {
					assert.Equal(t, n-free, extra)
					assert.True(t, decimal.NewFromInt(int64(2*(n-free))).Equal(fee))
				}
				assert.True(t, fee.GreaterThanOrEqual(prev), fmt.Sprintf("%s n=%d", sizeName, n))
				prev = fee
			}
		}
	})

	t.Run("sauces on non burgers are never charged", func(t *testing.T) {
		side := product(t, builder.SideID)
		opt := side.PotatoOptions[0]
		l := mustLine(t, cart.LineSpec{Product: side, PotatoOption: &opt, Sauces: []string{"a", "b", "c"}})
		extra, fee := calc.SauceOverage(l)
		assert.Zero(t, extra)
		assert.True(t, fee.IsZero())
	})

	t.Run("variant price replaces the base price", func(t *testing.T) {
		p := catalog.Product{ID: "x", Name: "Combo", BasePrice: builder.Money("1.00"), Category: catalog.CategoryBurger}
		v := catalog.Variant{Name: "Grande", Price: builder.Money("33.50")}
		size := catalog.SizeOption{Name: "Duplo", PriceIncrease: builder.Money("8")}

		l := mustLine(t, cart.LineSpec{Product: p, Variant: &v})
		assertMoney(t, "33.50", calc.UnitPrice(l))

		// The override wins over an earlier size increase; trio is layered after it.
		l = mustLine(t, cart.LineSpec{Product: p, Variant: &v, Size: &size, IsTrioUpsell: true, TrioDrinkName: "Guaraná"})
		assertMoney(t, "43.50", calc.UnitPrice(l))
	})

	t.Run("variant priced like the base keeps base plus size", func(t *testing.T) {
		p := catalog.Product{ID: "x", Name: "Combo", BasePrice: builder.Money("10.00"), Category: catalog.CategoryDrink}
		v := catalog.Variant{Name: "Igual", Price: builder.Money("10.00")}
		size := catalog.SizeOption{Name: "G", PriceIncrease: builder.Money("3")}
		l := mustLine(t, cart.LineSpec{Product: p, Variant: &v, Size: &size})
		assertMoney(t, "13.00", calc.UnitPrice(l))
	})

	t.Run("potato option replaces the base price", func(t *testing.T) {
		side := product(t, builder.SideID)
		recheada, ok := side.FindPotatoOption("Recheada")
		require.True(t, ok)

		l := mustLine(t, cart.LineSpec{Product: side, PotatoOption: &recheada, Quantity: 2})
		assertMoney(t, "21.00", calc.UnitPrice(l))
		assertMoney(t, "42.00", calc.LinePrice(l))
	})

	t.Run("sweet option replaces the base price", func(t *testing.T) {
		sweet := product(t, builder.SweetBurgerID)
		nutella, ok := sweet.FindSweetOption("Nutella")
		require.True(t, ok)

		l := mustLine(t, cart.LineSpec{Product: sweet, SweetOption: &nutella})
		assertMoney(t, "22.00", calc.UnitPrice(l))
	})

	t.Run("trio adds ten whatever the drink", func(t *testing.T) {
		plain := mustLine(t, cart.LineSpec{Product: burger})
		for _, drink := range []string{"Coca-Cola", "Guaraná", "anything"} {
			l := mustLine(t, cart.LineSpec{Product: burger, IsTrioUpsell: true, TrioDrinkName: drink})
			assert.True(t, calc.UnitPrice(plain).Add(decimal.NewFromInt(10)).Equal(calc.UnitPrice(l)), drink)
		}
	})

	t.Run("duplo with two sauces", func(t *testing.T) {
		duplo := catalog.SizeOption{Name: "Duplo", PriceIncrease: builder.Money("8.00")}
		l := mustLine(t, cart.LineSpec{Product: burger, Size: &duplo, Sauces: []string{"Bacon", "Alho"}})
		assertMoney(t, "25.00", calc.LinePrice(l))
	})

	t.Run("triplo grants a second free sauce", func(t *testing.T) {
		triplo := catalog.SizeOption{Name: "Triplo", PriceIncrease: builder.Money("15.00")}
		l := mustLine(t, cart.LineSpec{Product: burger, Size: &triplo, Sauces: []string{"Bacon", "Alho", "Ervas"}, Quantity: 3})
		// (15 + 15 + 2) * 3
		assertMoney(t, "96.00", calc.LinePrice(l))
	})

	t.Run("configured fees are honored", func(t *testing.T) {
		custom := cart.NewPriceCalculator(builder.Money("12.00"), builder.Money("2.50"))
		l := mustLine(t, cart.LineSpec{
			Product:       burger,
			Sauces:        []string{"Bacon", "Alho", "Ervas"},
			IsTrioUpsell:  true,
			TrioDrinkName: "Coca-Cola",
		})
		assertMoney(t, "32.00", custom.UnitPrice(l))
	})
}
