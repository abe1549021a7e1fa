//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"yatra/backend/internal/model"
	"yatra/backend/pkg/snowflake"
)

// SubscriberRepository defines the interface for newsletter subscriber storage.
type SubscriberRepository interface {
	Create(ctx context.Context, email string) (*model.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)
}

type subscriberRepository struct {
	db *sql.DB
}

// NewSubscriberRepository creates a new subscriber repository.
func NewSubscriberRepository(db *sql.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Create inserts a subscriber. Returns ErrDuplicate if the email is already
// subscribed.
func (r *subscriberRepository) Create(ctx context.Context, email string) (*model.Subscriber, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscribers (id, email, created_at)
		VALUES (?, ?, ?)
	`, id, email, formatTime(now))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return &model.Subscriber{ID: id, Email: email, CreatedAt: now}, nil
}

// GetByEmail retrieves a subscriber by email, or nil if absent.
func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, created_at FROM subscribers WHERE email = ?
	`, email)

	var s model.Subscriber
	var createdAt string
	if err := row.Scan(&s.ID, &s.Email, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	s.CreatedAt, _ = parseTime(createdAt)
	return &s, nil
}
