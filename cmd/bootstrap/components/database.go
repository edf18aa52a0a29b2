package components

import (
	"context"
	"log/slog"

	"nabrasa-storefront/internal/infra/db"
	"nabrasa-storefront/internal/infra/migrate"
	"nabrasa-storefront/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// NewDB is only called for the postgres store driver.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := migrate.Apply(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
