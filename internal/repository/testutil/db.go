package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"yatra/backend/internal/db"
	"yatra/backend/pkg/snowflake"
)

// snowflakeOnce guards global snowflake init across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is unusable inside sync.Once; panic instead.
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared-cache mode so concurrent connections see one in-memory DB;
	// the name is unique per test to avoid cross-test bleed.
	name := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", name)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedRateLimitEvent inserts one ledger row with an explicit timestamp.
func SeedRateLimitEvent(t *testing.T, database *sql.DB, bucket, clientID string, at time.Time) {
	t.Helper()

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO rate_limit_events (id, bucket, client_id, created_at_ms) VALUES (?, ?, ?, ?)`,
		snowflake.NextID(), bucket, clientID, at.UnixMilli(),
	)
	if err != nil {
		t.Fatalf("failed to seed rate limit event: %v", err)
	}
}

// SeedConsumedToken inserts one replay-ledger row.
func SeedConsumedToken(t *testing.T, database *sql.DB, tokenHash string, expiresAt time.Time) {
	t.Helper()

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO consumed_tokens (token_hash, expires_at_ms) VALUES (?, ?)`,
		tokenHash, expiresAt.UnixMilli(),
	)
	if err != nil {
		t.Fatalf("failed to seed consumed token: %v", err)
	}
}

// SeedSubscriber inserts one subscriber row and returns its ID.
func SeedSubscriber(t *testing.T, database *sql.DB, email string) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO subscribers (id, email, created_at) VALUES (?, ?, ?)`,
		id, email, now,
	)
	if err != nil {
		t.Fatalf("failed to seed subscriber: %v", err)
	}

	return id
}

// CountRows counts rows in a ledger table, optionally filtered by bucket.
func CountRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := database.QueryRowContext(
		context.Background(),
		`SELECT COUNT(*) FROM `+table,
	).Scan(&count); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return count
}
