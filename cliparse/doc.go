// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Batch Mode Fields

  - ContestPath: contest definition file (default: election.json)
  - BallotsPath: ballots file, JSON lines (default: votes.json)
  - OutputPath: result output file (default: result.json)

# Serve Mode Fields

Only validated when -serve is set:

  - Port: server listen port (default: 4117)
  - DatabaseURL: database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKeySalt: secret for admin key HMAC (required)

# CLI Flags

	-contest      Contest definition file
	-ballots      Ballots file
	-o            Result output file
	-serve        Run the HTTP API
	-p            Server port
	-d            Database URL
	-t            Database type
	--admin-salt  Admin key salt

# Environment Variables

Flags fall back to environment variables:

	CONTEST_FILE   → -contest
	BALLOTS_FILE   → -ballots
	OUTPUT_FILE    → -o
	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt

CLI flags take precedence over environment variables.

# Validation

Batch mode always parses successfully; every path has a default. Serve
mode returns an error when DATABASE_URL or ADMIN_KEY_SALT is missing, or
when the database type is not sqlite or postgres.
*/
package cliparse
