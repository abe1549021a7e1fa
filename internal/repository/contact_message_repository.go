//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"yatra/backend/internal/model"
	"yatra/backend/pkg/snowflake"
)

// ContactMessageRepository defines the interface for contact message storage.
type ContactMessageRepository interface {
	Create(ctx context.Context, name, email, message string) (*model.ContactMessage, error)
	CountAll(ctx context.Context) (int, error)
}

type contactMessageRepository struct {
	db *sql.DB
}

// NewContactMessageRepository creates a new contact message repository.
func NewContactMessageRepository(db *sql.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

// Create inserts a contact message.
func (r *contactMessageRepository) Create(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, name, email, message, formatTime(now))
	if err != nil {
		return nil, err
	}

	return &model.ContactMessage{
		ID:        id,
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: now,
	}, nil
}

// CountAll reports how many contact messages exist.
func (r *contactMessageRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	return count, err
}
