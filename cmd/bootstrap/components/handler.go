package components

import (
	"nabrasa-storefront/internal/handler"
	"nabrasa-storefront/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		func(catalog *api.CatalogHandler, cart *api.CartHandler, checkout *api.CheckoutHandler) handler.Handlers {
			return handler.Handlers{Catalog: catalog, Cart: cart, Checkout: checkout}
		},
	),
	fx.Invoke(handler.NewRouter),
)
