package model

import "time"

// TripLead is a booking inquiry for a trip. Reference is the opaque code
// handed back to the visitor for follow-up.
type TripLead struct {
	ID          int64
	Reference   string
	Name        string
	Email       string
	Phone       *string
	Destination *string
	TravelDate  *string
	GroupSize   *int
	Message     *string
	Source      *string
	CreatedAt   time.Time
}
