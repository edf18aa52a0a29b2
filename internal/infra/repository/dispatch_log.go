package repository

import (
	"context"
	"log/slog"
	"time"

	"nabrasa-storefront/internal/infra"
	"nabrasa-storefront/internal/infra/db"
	"nabrasa-storefront/internal/pkg/pgconv"
	"nabrasa-storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	upsertOrderDispatch = `
INSERT INTO order_dispatches (external_id, content_hash, status, order_id, print_queued, attempts, last_error, updated_at)
VALUES ($1, $2, $3, $4, $5, 1, $6, $7)
ON CONFLICT (external_id) DO UPDATE
SET content_hash = EXCLUDED.content_hash,
    status = EXCLUDED.status,
    order_id = COALESCE(EXCLUDED.order_id, order_dispatches.order_id),
    print_queued = EXCLUDED.print_queued,
    attempts = order_dispatches.attempts + 1,
    last_error = EXCLUDED.last_error,
    updated_at = EXCLUDED.updated_at
`
	insertDispatchAttempt = `
INSERT INTO order_dispatch_attempts (external_id, idempotency_key, status, error, attempted_at)
VALUES ($1, $2, $3, $4, $5)
`
	getOrderDispatch = `
SELECT external_id, content_hash, status, order_id, print_queued, attempts, last_error, updated_at
FROM order_dispatches
WHERE external_id = $1
`
)

// DispatchSummary is the latest known state of one order's intake delivery.
type DispatchSummary struct {
	ExternalID  string
	ContentHash string
	Status      shared.DispatchStatus
	OrderID     string
	PrintQueued bool
	Attempts    int
	LastError   string
	UpdatedAt   time.Time
}

type DispatchLogRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ shared.DispatchLog = (*DispatchLogRepository)(nil)

func NewDispatchLogRepository(pool *pgxpool.Pool, logger *slog.Logger) *DispatchLogRepository {
	return &DispatchLogRepository{pool: pool, logger: logger}
}

func (r *DispatchLogRepository) Record(ctx context.Context, rec shared.DispatchRecord) error {
	err := db.WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) error {
		_, err := tx.Exec(ctx, upsertOrderDispatch,
			rec.ExternalID,
			rec.ContentHash,
			string(rec.Status),
			pgconv.TextOrNull(rec.OrderID),
			rec.PrintQueued,
			pgconv.TextOrNull(rec.LastError),
			pgconv.TimeToPgtype(rec.AttemptedAt),
		)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, insertDispatchAttempt,
			rec.ExternalID,
			rec.IdempotencyKey,
			string(rec.Status),
			pgconv.TextOrNull(rec.LastError),
			pgconv.TimeToPgtype(rec.AttemptedAt),
		)
		return err
	})
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(r.logger, "dispatch attempt already recorded", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr(r.logger, "failed to record order dispatch", err)
	}
	return nil
}

func (r *DispatchLogRepository) FindByExternalID(ctx context.Context, externalID string) (*DispatchSummary, error) {
	var (
		s         DispatchSummary
		status    string
		orderID   pgtype.Text
		lastError pgtype.Text
		updatedAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, getOrderDispatch, externalID).Scan(
		&s.ExternalID,
		&s.ContentHash,
		&status,
		&orderID,
		&s.PrintQueued,
		&s.Attempts,
		&lastError,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, "order dispatch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(r.logger, "failed to find order dispatch", err)
	}

	s.Status = shared.DispatchStatus(status)
	s.OrderID = pgconv.StringFromPgtype(orderID)
	s.LastError = pgconv.StringFromPgtype(lastError)
	s.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &s, nil
}
