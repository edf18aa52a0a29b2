//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// storefront tables in dependency order; schema_migrations is left alone.
var storeTables = []string{
	"order_dispatch_attempts",
	"order_dispatches",
	"coupon_usage",
}

func SeedCouponUsage(t *testing.T, db DBLike, code string, useCount int, lastUsedAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO coupon_usage (code, use_count, last_used_at) VALUES ($1, $2, $3)",
		code, useCount, lastUsedAt)
	require.NoError(t, err)
}

func CouponUseCount(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COALESCE((SELECT use_count FROM coupon_usage WHERE code = $1), 0)", code).Scan(&n)
	require.NoError(t, err)
	return n
}

func DispatchAttemptCount(t *testing.T, db DBLike, externalID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM order_dispatch_attempts WHERE external_id = $1", externalID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB truncates every storefront table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(storeTables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}
