package components

import (
	"context"
	"log/slog"
	"time"

	"nabrasa-storefront/internal/domain/coupon"
	"nabrasa-storefront/internal/infra/dispatch"
	"nabrasa-storefront/internal/infra/memstore"
	"nabrasa-storefront/internal/infra/repository"
	"nabrasa-storefront/internal/infra/webhook"
	"nabrasa-storefront/internal/pkg/clock"
	"nabrasa-storefront/internal/pkg/config"
	"nabrasa-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

const sessionSweepInterval = 10 * time.Minute

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
		NewSessionStore,
		NewOrderDispatcher,
	),
)

type Stores struct {
	fx.Out

	CouponUsage coupon.UsageStore
	DispatchLog shared.DispatchLog
}

// NewStores picks the backing store for coupon usage and the dispatch log.
// Sessions always live in memory.
func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		logger.Info("using in-memory stores")
		return Stores{
			CouponUsage: memstore.NewCouponUsageStore(),
			DispatchLog: memstore.NewDispatchLog(),
		}, nil
	}

	pool, err := NewDB(lc, cfg, logger)
	if err != nil {
		return Stores{}, err
	}
	logger.Info("using postgres stores", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return Stores{
		CouponUsage: repository.NewCouponUsageRepository(pool, logger),
		DispatchLog: repository.NewDispatchLogRepository(pool, logger),
	}, nil
}

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) shared.SessionStore {
	store := memstore.NewSessionStore(clk, cfg.Session.TTL)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go store.RunSweeper(ctx, sessionSweepInterval, logger)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return store
}

func NewOrderDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	dispatchLog shared.DispatchLog,
	sessions shared.SessionStore,
	clk clock.Clock,
	logger *slog.Logger,
) shared.OrderDispatcher {
	if !cfg.Webhook.Enabled() {
		logger.Info("order intake webhook disabled")
		return dispatch.NewDisabled(logger)
	}

	d := dispatch.New(
		webhook.NewClient(cfg.Webhook),
		dispatchLog,
		sessions,
		clk,
		logger,
		dispatch.Options{Workers: cfg.Webhook.Workers, QueueSize: cfg.Webhook.QueueSize},
	)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: d.Stop,
	})
	return d
}
