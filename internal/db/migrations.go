package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT). The two ledger tables
// (rate_limit_events, consumed_tokens) keep epoch-millisecond integer
// timestamps so window queries are plain integer range scans; the content
// tables use RFC3339 text like the rest of the app.
const baseSchema = `
CREATE TABLE IF NOT EXISTS subscribers (
  id INTEGER PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contact_messages (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  message TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trip_leads (
  id INTEGER PRIMARY KEY,
  reference TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT,
  destination TEXT,
  travel_date TEXT,
  group_size INTEGER,
  message TEXT,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS rate_limit_events (
  id INTEGER PRIMARY KEY,
  bucket TEXT NOT NULL,
  client_id TEXT NOT NULL,
  created_at_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_rate_limit_events_window
  ON rate_limit_events(bucket, client_id, created_at_ms);

CREATE TABLE IF NOT EXISTS consumed_tokens (
  token_hash TEXT PRIMARY KEY,
  expires_at_ms INTEGER NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: prune queries scan by age alone, so the compound window
	// index doesn't help; add a created_at_ms index.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_rate_limit_events_created_at ON rate_limit_events(created_at_ms)`); err != nil {
		return fmt.Errorf("create idx_rate_limit_events_created_at: %w", err)
	}

	// Migration 2: same for expired-token sweeps.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_consumed_tokens_expires_at ON consumed_tokens(expires_at_ms)`); err != nil {
		return fmt.Errorf("create idx_consumed_tokens_expires_at: %w", err)
	}

	// Migration 3: add source column to trip_leads (which page the lead
	// came from) if not exists.
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('trip_leads') WHERE name = 'source'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check trip_leads source column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE trip_leads ADD COLUMN source TEXT`); err != nil {
			return fmt.Errorf("add trip_leads source column: %w", err)
		}
	}

	return nil
}
