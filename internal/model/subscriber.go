package model

import "time"

// Subscriber is one newsletter signup.
type Subscriber struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}
