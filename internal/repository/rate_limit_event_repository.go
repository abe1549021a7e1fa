//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"yatra/backend/pkg/snowflake"
)

// RateLimitEventRepository is the durable append-only ledger behind the
// sliding-window limiter. Rows are never updated; window counts are
// recomputed from timestamps on every check, which keeps the scheme correct
// under any number of concurrent server instances.
type RateLimitEventRepository interface {
	Insert(ctx context.Context, bucket, clientID string, at time.Time) error
	CountSince(ctx context.Context, bucket, clientID string, since time.Time) (int, error)
	OldestSince(ctx context.Context, bucket, clientID string, since time.Time) (*time.Time, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type rateLimitEventRepository struct {
	db *sql.DB
}

// NewRateLimitEventRepository creates a new rate limit event repository.
func NewRateLimitEventRepository(db *sql.DB) RateLimitEventRepository {
	return &rateLimitEventRepository{db: db}
}

// Insert appends one attempt row.
func (r *rateLimitEventRepository) Insert(ctx context.Context, bucket, clientID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rate_limit_events (id, bucket, client_id, created_at_ms)
		VALUES (?, ?, ?, ?)
	`, snowflake.NextID(), bucket, clientID, at.UnixMilli())
	return err
}

// CountSince counts attempts for (bucket, clientID) at or after since.
func (r *rateLimitEventRepository) CountSince(ctx context.Context, bucket, clientID string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM rate_limit_events
		WHERE bucket = ? AND client_id = ? AND created_at_ms >= ?
	`, bucket, clientID, since.UnixMilli()).Scan(&count)
	return count, err
}

// OldestSince returns the timestamp of the oldest in-window attempt, or nil
// if there is none.
func (r *rateLimitEventRepository) OldestSince(ctx context.Context, bucket, clientID string, since time.Time) (*time.Time, error) {
	var ms sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT MIN(created_at_ms) FROM rate_limit_events
		WHERE bucket = ? AND client_id = ? AND created_at_ms >= ?
	`, bucket, clientID, since.UnixMilli()).Scan(&ms)
	if err != nil {
		return nil, err
	}
	if !ms.Valid {
		return nil, nil
	}
	oldest := time.UnixMilli(ms.Int64).UTC()
	return &oldest, nil
}

// DeleteBefore prunes attempts strictly older than cutoff.
func (r *rateLimitEventRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM rate_limit_events WHERE created_at_ms < ?
	`, cutoff.UnixMilli())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
