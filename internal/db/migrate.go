package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedules (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		selected_days TEXT NOT NULL,
		has_break     INTEGER NOT NULL DEFAULT 0,
		break_start   TEXT,
		break_end     TEXT,
		has_lunch     INTEGER NOT NULL DEFAULT 0,
		lunch_start   TEXT,
		lunch_end     TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_schedules_name
		ON schedules(name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS periods (
		schedule_id TEXT NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		label       TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		PRIMARY KEY (schedule_id, position)
	)`,

	// Single-row settings table; id is pinned to 1.
	`CREATE TABLE IF NOT EXISTS settings (
		id          INTEGER PRIMARY KEY CHECK (id = 1),
		use_24_hour INTEGER NOT NULL DEFAULT 0
	)`,
}
