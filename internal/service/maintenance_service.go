//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"time"

	"yatra/backend/internal/repository"
	"yatra/backend/pkg/logger"
)

// ledgerRetention is how long rate-limit events are kept by the background
// sweep: comfortably past 6x the longest window in use (10 minutes).
const ledgerRetention = time.Hour

// CacheSweeper is the slice of the TTL cache the maintenance pass needs.
type CacheSweeper interface {
	Sweep()
}

// MaintenanceService prunes the ledgers and sweeps process-local caches.
// Every step is best-effort: failures are logged and swallowed, because
// window queries and expiry checks never depend on pruning having run.
type MaintenanceService interface {
	Sweep(ctx context.Context)
}

type maintenanceService struct {
	events repository.RateLimitEventRepository
	tokens repository.ConsumedTokenRepository
	caches []CacheSweeper
}

// NewMaintenanceService creates a maintenance service over the two ledgers
// and any process-local caches.
func NewMaintenanceService(events repository.RateLimitEventRepository, tokens repository.ConsumedTokenRepository, caches ...CacheSweeper) MaintenanceService {
	return &maintenanceService{events: events, tokens: tokens, caches: caches}
}

func (s *maintenanceService) Sweep(ctx context.Context) {
	now := time.Now().UTC()

	if deleted, err := s.events.DeleteBefore(ctx, now.Add(-ledgerRetention)); err != nil {
		logger.Warn("rate limit ledger sweep failed", "module", "service", "resource", "maintenance", "error", err)
	} else if deleted > 0 {
		logger.Debug("rate limit ledger swept", "module", "service", "resource", "maintenance", "deleted", deleted)
	}

	if deleted, err := s.tokens.DeleteExpired(ctx, now); err != nil {
		logger.Warn("token ledger sweep failed", "module", "service", "resource", "maintenance", "error", err)
	} else if deleted > 0 {
		logger.Debug("token ledger swept", "module", "service", "resource", "maintenance", "deleted", deleted)
	}

	for _, cache := range s.caches {
		cache.Sweep()
	}
}
