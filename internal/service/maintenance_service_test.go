package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yatra/backend/internal/repository"
	"yatra/backend/internal/repository/testutil"
	"yatra/backend/internal/service"
)

type countingSweeper struct {
	sweeps int
}

func (s *countingSweeper) Sweep() { s.sweeps++ }

func TestMaintenanceService_Sweep(t *testing.T) {
	db := testutil.NewTestDB(t)
	events := repository.NewRateLimitEventRepository(db)
	tokens := repository.NewConsumedTokenRepository(db)
	cache := &countingSweeper{}
	svc := service.NewMaintenanceService(events, tokens, cache)
	ctx := context.Background()

	now := time.Now().UTC()
	testutil.SeedRateLimitEvent(t, db, "newsletter", "1.2.3.4", now.Add(-2*time.Hour))
	testutil.SeedRateLimitEvent(t, db, "newsletter", "1.2.3.4", now.Add(-time.Minute))
	testutil.SeedConsumedToken(t, db, "hash-expired", now.Add(-time.Minute))
	testutil.SeedConsumedToken(t, db, "hash-live", now.Add(time.Hour))

	svc.Sweep(ctx)

	require.Equal(t, 1, testutil.CountRows(t, db, "rate_limit_events"), "only events past retention are removed")
	require.Equal(t, 1, testutil.CountRows(t, db, "consumed_tokens"), "only expired token hashes are removed")
	require.Equal(t, 1, cache.sweeps)
}

func TestMaintenanceService_SweepOnEmptyLedgers(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewMaintenanceService(
		repository.NewRateLimitEventRepository(db),
		repository.NewConsumedTokenRepository(db),
	)

	// No ledger rows and no caches; the sweep is a no-op, not a failure.
	svc.Sweep(context.Background())
	require.Zero(t, testutil.CountRows(t, db, "rate_limit_events"))
}
