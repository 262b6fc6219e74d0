// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the ballotbox entry point.

Ballotbox tallies votes for single-winner, first-past-the-post contests.
The same counting engine runs in two modes.

# Batch Mode (default)

Read a contest definition and a JSON-lines ballots file, tally, and write
a result document:

	ballotbox -contest election.json -ballots votes.json -o result.json

All paths have defaults (election.json, votes.json, result.json) and env
fallbacks (CONTEST_FILE, BALLOTS_FILE, OUTPUT_FILE). A parse error in
either input aborts with a non-zero exit and no output file.

# Serve Mode

Run a small HTTP API that stores contests and ballots in a database and
computes the same tally on demand:

	DATABASE_URL=file:ballotbox.db ADMIN_KEY_SALT=... ballotbox -serve

Required settings:

  - DATABASE_URL (-d): sqlite or postgres connection string
  - ADMIN_KEY_SALT (--admin-salt): secret for admin key HMAC

Optional settings:

  - PORT (-p): server port (default: 4117)
  - DATABASE_TYPE (-t): sqlite (default) or postgres

# Architecture

The code is organized around one pure counting core:

  - tally: the counting and winner-resolution engine (no I/O)
  - ballotio: the batch file formats (contest JSON, ballots JSON-lines,
    result document)
  - models: shared domain, request, and response types
  - handlers: serve-mode HTTP handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - auth: admin keys, IDs, IP hashing
  - db: connection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
