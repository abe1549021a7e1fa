package model

import "time"

// RateLimitEvent is one attempt against a rate-limit bucket. Rows are
// append-only; the sliding window is recomputed from timestamps on every
// check, so pruning old rows is hygiene, not correctness.
type RateLimitEvent struct {
	ID        int64
	Bucket    string
	ClientID  string
	CreatedAt time.Time
}

// ConsumedToken records a successfully verified challenge token by keyed
// hash. The primary-key constraint on the hash is the replay gate.
type ConsumedToken struct {
	TokenHash string
	ExpiresAt time.Time
}
