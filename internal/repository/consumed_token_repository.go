//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"
)

// ConsumedTokenRepository records challenge tokens that have already been
// accepted, keyed by HMAC hash. The primary-key constraint is the replay
// gate: the first insert wins and every concurrent duplicate loses.
type ConsumedTokenRepository interface {
	Consume(ctx context.Context, tokenHash string, expiresAt time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type consumedTokenRepository struct {
	db *sql.DB
}

// NewConsumedTokenRepository creates a new consumed token repository.
func NewConsumedTokenRepository(db *sql.DB) ConsumedTokenRepository {
	return &consumedTokenRepository{db: db}
}

// Consume marks tokenHash as used. Returns ErrDuplicate if an unexpired row
// already holds the hash. A leftover expired row does not block: it is
// cleared and the insert retried once.
func (r *consumedTokenRepository) Consume(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	err := r.insert(ctx, tokenHash, expiresAt)
	if err != ErrDuplicate {
		return err
	}

	cleared, clearErr := r.db.ExecContext(ctx, `
		DELETE FROM consumed_tokens WHERE token_hash = ? AND expires_at_ms < ?
	`, tokenHash, time.Now().UnixMilli())
	if clearErr != nil {
		return clearErr
	}
	if rows, rowsErr := cleared.RowsAffected(); rowsErr != nil || rows == 0 {
		// Nothing expired was in the way: the hash is genuinely in use.
		return ErrDuplicate
	}

	return r.insert(ctx, tokenHash, expiresAt)
}

func (r *consumedTokenRepository) insert(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO consumed_tokens (token_hash, expires_at_ms)
		VALUES (?, ?)
	`, tokenHash, expiresAt.UnixMilli())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// DeleteExpired prunes rows whose expiry has passed.
func (r *consumedTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM consumed_tokens WHERE expires_at_ms < ?
	`, now.UnixMilli())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
