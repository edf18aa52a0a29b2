package repository

import (
	"context"
	"log/slog"

	"nabrasa-storefront/internal/domain/coupon"
	"nabrasa-storefront/internal/infra"
	"nabrasa-storefront/internal/infra/db"
	"nabrasa-storefront/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	getCouponUsage = `
SELECT code, use_count, last_used_at
FROM coupon_usage
WHERE code = $1
`
	upsertCouponUsage = `
INSERT INTO coupon_usage (code, use_count, last_used_at, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (code) DO UPDATE
SET use_count = EXCLUDED.use_count,
    last_used_at = EXCLUDED.last_used_at,
    updated_at = now()
`
)

// CouponUsageRepository persists how many times each coupon was redeemed.
type CouponUsageRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

var _ coupon.UsageStore = (*CouponUsageRepository)(nil)

func NewCouponUsageRepository(conn db.DBTX, logger *slog.Logger) *CouponUsageRepository {
	return &CouponUsageRepository{db: conn, logger: logger}
}

func (r *CouponUsageRepository) Get(ctx context.Context, code coupon.Code) (coupon.UsageRecord, bool, error) {
	var (
		rec      coupon.UsageRecord
		rawCode  string
		lastUsed pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getCouponUsage, code.String()).Scan(&rawCode, &rec.UseCount, &lastUsed)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return coupon.UsageRecord{Code: code}, false, nil
		}
		return coupon.UsageRecord{}, false, infra.WrapRepoErr(r.logger, "failed to get coupon usage", err)
	}

	rec.Code = coupon.Code(rawCode)
	rec.LastUsedAt = pgconv.TimeFromPgtype(lastUsed)
	return rec, true, nil
}

func (r *CouponUsageRepository) Set(ctx context.Context, rec coupon.UsageRecord) error {
	if rec.UseCount < 0 {
		return infra.WrapRepoErr(r.logger, "negative coupon use count", nil, infra.KindInvalidData)
	}
	_, err := r.db.Exec(ctx, upsertCouponUsage, rec.Code.String(), rec.UseCount, pgconv.TimeToPgtype(rec.LastUsedAt))
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to save coupon usage", err)
	}
	return nil
}
