// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mwhitby/ballotbox/cliparse"
)

// Open connects using the configured driver. DatabaseType selects between
// the embedded sqlite driver and postgres.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for serve mode.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are set from Go so the DDL stays valid on both sqlite and
// postgres.
const schema = `
-- Contests
CREATE TABLE IF NOT EXISTS contest (
    id INTEGER PRIMARY KEY,
    description TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Choices, in declaration order via position
CREATE TABLE IF NOT EXISTS choice (
    contest_id INTEGER NOT NULL REFERENCES contest(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    choice_id INTEGER NOT NULL,
    text TEXT NOT NULL,
    PRIMARY KEY (contest_id, position)
);

CREATE INDEX IF NOT EXISTS idx_choice_contest_id ON choice(contest_id);

-- Ballots. box_id is the contest the ballot was dropped into; contest_id
-- and choice_id are what the voter claimed, preserved verbatim even when
-- they reference nothing.
CREATE TABLE IF NOT EXISTS ballot (
    id TEXT PRIMARY KEY,
    box_id INTEGER NOT NULL REFERENCES contest(id) ON DELETE CASCADE,
    contest_id INTEGER NOT NULL,
    choice_id INTEGER NOT NULL,
    ip_hash TEXT,
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ballot_box_id ON ballot(box_id);
`
