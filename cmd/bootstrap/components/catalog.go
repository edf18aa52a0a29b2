package components

import (
	"log/slog"

	"nabrasa-storefront/internal/domain/catalog"
	"nabrasa-storefront/internal/domain/configuration"
	"nabrasa-storefront/internal/domain/coupon"
	"nabrasa-storefront/internal/domain/order"
	"nabrasa-storefront/internal/infra/catalogfile"
	"nabrasa-storefront/internal/pkg/clock"
	"nabrasa-storefront/internal/pkg/config"
	"nabrasa-storefront/internal/usecase/commands"
	"nabrasa-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewClock,
		NewCatalogSnapshot,
		func(s *catalogfile.Snapshot) *catalog.Catalog { return s.Catalog },
		configuration.NewResolver,
		NewPricing,
		NewOrderBuilders,
		fx.Annotate(
			NewCouponValidator,
			fx.As(new(commands.CouponValidator)),
		),
	),
)

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewZonedClock(clock.LoadLocation(cfg.Storefront.TimeZone, cfg.Log.TimeZoneOffset))
}

func NewCatalogSnapshot(cfg config.Config, logger *slog.Logger) (*catalogfile.Snapshot, error) {
	snap, err := catalogfile.Load(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		"version", snap.Catalog.Version(),
		"products", len(snap.Catalog.Products()),
		"coupons", len(snap.Coupons))
	return snap, nil
}

func NewPricing(cfg config.Config) shared.Pricing {
	return shared.NewPricing(cfg.Order.TrioFee, cfg.Order.ExtraSauceFee, cfg.Order.DeliveryFee)
}

func NewOrderBuilders(cfg config.Config, pricing shared.Pricing, c *catalog.Catalog) commands.OrderBuilders {
	sf := cfg.Storefront
	return commands.OrderBuilders{
		Message:        order.NewMessageBuilder(sf.Name, sf.ChatBaseURL, sf.ChatRecipient, pricing.Calculator),
		Payload:        order.NewPayloadBuilder(sf.Slug, sf.SourceDomain, cfg.Order.TrioFee, pricing.Calculator),
		CatalogVersion: c.Version(),
	}
}

func NewCouponValidator(snap *catalogfile.Snapshot, store coupon.UsageStore, clk clock.Clock) *coupon.Validator {
	return coupon.NewValidator(snap.Coupons, store, clk)
}
