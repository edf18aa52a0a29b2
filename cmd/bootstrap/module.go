package bootstrap

import (
	"nabrasa-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.CatalogModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
