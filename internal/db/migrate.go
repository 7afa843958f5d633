package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS session (
		id           TEXT PRIMARY KEY,
		email        TEXT NOT NULL,
		access_token TEXT NOT NULL,
		saved_at     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bids_cache (
		bid_id         INTEGER PRIMARY KEY,
		real_id        TEXT NOT NULL DEFAULT '',
		name           TEXT NOT NULL,
		region         TEXT NOT NULL DEFAULT '',
		organization   TEXT NOT NULL DEFAULT '',
		start_date     TEXT NOT NULL DEFAULT '',
		end_date       TEXT NOT NULL DEFAULT '',
		open_date      TEXT NOT NULL DEFAULT '',
		estimate_price INTEGER NOT NULL DEFAULT 0,
		bid_url        TEXT NOT NULL DEFAULT '',
		fetched_at     TEXT NOT NULL,
		position       INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bids_cache_position ON bids_cache(position)`,
	`CREATE TABLE IF NOT EXISTS notices_cache (
		notice_id  INTEGER PRIMARY KEY,
		title      TEXT NOT NULL,
		user_name  TEXT NOT NULL DEFAULT '',
		category   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT '',
		fetched_at TEXT NOT NULL,
		position   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notices_cache_position ON notices_cache(position)`,
}
