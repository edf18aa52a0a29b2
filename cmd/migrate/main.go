package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"nabrasa-storefront/internal/handler/middleware"
	"nabrasa-storefront/internal/infra/db"
	"nabrasa-storefront/internal/infra/migrate"
	"nabrasa-storefront/internal/pkg/config"
)

func main() {
	steps := flag.Int("steps", 1, "number of migrations to roll back with down")
	flag.Parse()

	direction := "up"
	if flag.NArg() > 0 {
		direction = flag.Arg(0)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger().With("component", "migrate")

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	switch direction {
	case "up":
		err = migrate.Apply(ctx, pool)
	case "down":
		err = migrate.Rollback(ctx, pool, *steps)
	default:
		logger.Error("unknown direction, expected up or down", "direction", direction)
		cleanup()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed", "direction", direction, "error", err)
		cleanup()
		os.Exit(1)
	}

	logger.Info("migrations finished", "direction", direction)
}
