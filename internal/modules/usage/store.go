// README: Plan-usage persistence (Postgres quota + history, Redis burst counter).
package usage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Store handles plan_usage and plan_history persistence plus burst accounting.
type Store struct {
	db  *pgxpool.Pool
	rdb *redis.Client
}

// NewStore returns a Store backed by the given connections.
func NewStore(db *pgxpool.Pool, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

// UsePlanRequest atomically checks the monthly quota and deducts one request.
// It resets the counter to quota when last_reset_month is behind the current
// month. Returns ErrQuotaExceeded when 0 rows are updated (quota exhausted or
// user absent).
func (s *Store) UsePlanRequest(ctx context.Context, uid string, quota int) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE plan_usage SET
			requests_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE requests_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR requests_remaining > 0)
	`, now, quota, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExceeded
	}
	return nil
}

// EnsureUser inserts a new plan_usage row for uid with the full allowance.
// If the row already exists the insert is silently skipped (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, uid string, quota int) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_usage (uid, requests_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, quota, time.Now().Format("2006-01"))
	return err
}

// CountBurst increments the per-user counter for the current window and
// returns the new count. The key expires after burstWindow so idle users
// leave nothing behind.
func (s *Store) CountBurst(ctx context.Context, uid string) (int64, error) {
	key := "tripsmith:burst:" + uid
	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, burstWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RecordPlan appends a generated plan to the history table.
func (s *Store) RecordPlan(ctx context.Context, uid, query string, planJSON []byte, took time.Duration) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO plan_history (uid, query, plan, took_ms)
		VALUES ($1, $2, $3, $4)
	`, uid, query, planJSON, took.Milliseconds())
	return err
}
