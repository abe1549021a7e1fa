//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"yatra/backend/internal/model"
	"yatra/backend/pkg/snowflake"
)

// TripLeadRepository defines the interface for trip lead storage.
type TripLeadRepository interface {
	Create(ctx context.Context, lead model.TripLead) (*model.TripLead, error)
	GetByReference(ctx context.Context, reference string) (*model.TripLead, error)
}

type tripLeadRepository struct {
	db *sql.DB
}

// NewTripLeadRepository creates a new trip lead repository.
func NewTripLeadRepository(db *sql.DB) TripLeadRepository {
	return &tripLeadRepository{db: db}
}

// Create inserts a lead. Reference must already be set by the caller; a
// colliding reference surfaces as ErrDuplicate.
func (r *tripLeadRepository) Create(ctx context.Context, lead model.TripLead) (*model.TripLead, error) {
	lead.ID = snowflake.NextID()
	lead.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO trip_leads (id, reference, name, email, phone, destination, travel_date, group_size, message, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		lead.ID, lead.Reference, lead.Name, lead.Email,
		nullableString(lead.Phone), nullableString(lead.Destination), nullableString(lead.TravelDate),
		nullableInt(lead.GroupSize), nullableString(lead.Message), nullableString(lead.Source),
		formatTime(lead.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return &lead, nil
}

// GetByReference retrieves a lead by its reference code, or nil if absent.
func (r *tripLeadRepository) GetByReference(ctx context.Context, reference string) (*model.TripLead, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, reference, name, email, phone, destination, travel_date, group_size, message, source, created_at
		FROM trip_leads WHERE reference = ?
	`, reference)

	var (
		lead        model.TripLead
		phone       sql.NullString
		destination sql.NullString
		travelDate  sql.NullString
		groupSize   sql.NullInt64
		message     sql.NullString
		source      sql.NullString
		createdAt   string
	)
	if err := row.Scan(
		&lead.ID, &lead.Reference, &lead.Name, &lead.Email,
		&phone, &destination, &travelDate, &groupSize, &message, &source, &createdAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if phone.Valid {
		lead.Phone = &phone.String
	}
	if destination.Valid {
		lead.Destination = &destination.String
	}
	if travelDate.Valid {
		lead.TravelDate = &travelDate.String
	}
	if groupSize.Valid {
		size := int(groupSize.Int64)
		lead.GroupSize = &size
	}
	if message.Valid {
		lead.Message = &message.String
	}
	if source.Valid {
		lead.Source = &source.String
	}
	lead.CreatedAt, _ = parseTime(createdAt)
	return &lead, nil
}
