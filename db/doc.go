// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation for serve mode.

# Opening

Open selects the driver from configuration:

	conn, err := db.Open(cfg) // sqlite (modernc.org/sqlite) or postgres (lib/pq)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL avoids engine-specific defaults so the same schema runs on both
sqlite and postgres; timestamps are always set from Go.

# Tables

  - contest: contest id and description
  - choice: declared choices per contest, ordered by position
  - ballot: one row per cast ballot, with the voter's claimed
    contest_id/choice_id kept verbatim

# Relationships

	contest 1──* choice
	contest 1──* ballot (via box_id)

A ballot's claimed contest_id and choice_id are deliberately NOT foreign
keys: referencing a nonexistent contest or choice is valid input that the
tally engine filters out at counting time.
*/
package db
