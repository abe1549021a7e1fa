//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"yatra/backend/internal/repository"
	"yatra/backend/pkg/logger"
)

const (
	// pruneInterval gates best-effort ledger pruning to roughly once a
	// minute per process.
	pruneInterval = time.Minute
	// minRetention is the floor for how long pruned events are kept.
	minRetention = 30 * time.Minute
	pruneTimeout = 10 * time.Second
)

// RateLimiter bounds requests per (bucket, client identity) over a sliding
// window. The count lives in a durable shared ledger, so the limit holds
// across any number of concurrent server instances.
type RateLimiter interface {
	Check(ctx context.Context, bucket, clientID string, limit int, window time.Duration) error
}

type rateLimiter struct {
	events repository.RateLimitEventRepository
	now    func() time.Time

	mu        sync.Mutex
	lastPrune time.Time
}

// NewRateLimiter creates a rate limiter over the given event ledger.
func NewRateLimiter(events repository.RateLimitEventRepository) RateLimiter {
	return &rateLimiter{events: events, now: time.Now}
}

// Check records this attempt and rejects it if the window now holds more
// than limit events. The attempt row is inserted before counting, and even
// for attempts that end up rejected; otherwise racing duplicates could slip
// past the limit.
func (s *rateLimiter) Check(ctx context.Context, bucket, clientID string, limit int, window time.Duration) error {
	now := s.now().UTC()

	if err := s.events.Insert(ctx, bucket, clientID, now); err != nil {
		return fmt.Errorf("record rate limit attempt: %w", err)
	}

	since := now.Add(-window)
	count, err := s.events.CountSince(ctx, bucket, clientID, since)
	if err != nil {
		return fmt.Errorf("count rate limit window: %w", err)
	}

	defer s.maybePrune(window)

	// count includes the row just inserted; the boundary is "more than
	// limit", so the limit-th request still passes.
	if count <= limit {
		return nil
	}

	retryAfter := int(window / time.Second)
	if oldest, oldestErr := s.events.OldestSince(ctx, bucket, clientID, since); oldestErr == nil && oldest != nil {
		remaining := int((window - now.Sub(*oldest)) / time.Second)
		if remaining < 1 {
			remaining = 1
		}
		retryAfter = remaining
	}

	logger.Warn("rate limit exceeded",
		"module", "service", "resource", "ratelimit",
		"bucket", bucket, "count", count, "limit", limit, "retry_after", retryAfter)
	return &RateLimitError{RetryAfter: retryAfter}
}

// maybePrune deletes events past the retention horizon, at most once per
// pruneInterval per process and never on the request's critical path.
// Pruning is hygiene only: window queries always filter by timestamp, so
// correctness never depends on it having run.
func (s *rateLimiter) maybePrune(window time.Duration) {
	s.mu.Lock()
	now := s.now()
	if now.Sub(s.lastPrune) < pruneInterval {
		s.mu.Unlock()
		return
	}
	s.lastPrune = now
	s.mu.Unlock()

	retention := 6 * window
	if retention < minRetention {
		retention = minRetention
	}
	cutoff := now.Add(-retention)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
		defer cancel()
		deleted, err := s.events.DeleteBefore(ctx, cutoff)
		if err != nil {
			logger.Debug("rate limit prune failed", "module", "service", "resource", "ratelimit", "error", err)
			return
		}
		if deleted > 0 {
			logger.Debug("rate limit ledger pruned", "module", "service", "resource", "ratelimit", "deleted", deleted)
		}
	}()
}
