package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS history_imports (
		id          TEXT PRIMARY KEY,
		source      TEXT NOT NULL,
		row_count   INTEGER NOT NULL,
		has_gpa     INTEGER NOT NULL DEFAULT 0,
		imported_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS history_records (
		row_index       INTEGER PRIMARY KEY,
		name_display    TEXT NOT NULL DEFAULT '',
		name_key        TEXT NOT NULL DEFAULT '',
		emplid          TEXT NOT NULL DEFAULT '',
		acad_prog       TEXT NOT NULL DEFAULT '',
		cum_gpa         REAL,
		course_title    TEXT NOT NULL DEFAULT '',
		title_key       TEXT NOT NULL DEFAULT '',
		subject_code    TEXT NOT NULL DEFAULT '',
		grade           TEXT NOT NULL DEFAULT '',
		mon             TEXT,
		tues            TEXT,
		wed             TEXT,
		thurs           TEXT,
		fri             TEXT,
		sat             TEXT,
		sun             TEXT,
		mtg_start       TEXT,
		mtg_end         TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_name_key ON history_records(name_key)`,
	`CREATE INDEX IF NOT EXISTS idx_history_title_key ON history_records(title_key)`,
	`CREATE INDEX IF NOT EXISTS idx_imports_imported_at ON history_imports(imported_at)`,
}

// Migrate applies every schema statement. Statements are idempotent, so it is
// safe to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
