// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the serve-mode HTTP handlers.

# Handlers

Each handler owns a slice of the API and is constructed with the shared
database handle and configuration:

  - ContestsHandler: create, fetch, and delete contests
  - VotingHandler: cast single ballots and import JSON-lines batches
  - ResultsHandler: compute tallies and report ballot counts

# Ballot Acceptance

Casting never validates the claimed contest_id or choice_id against the
contest. Stray references are stored verbatim and filtered out by the
tally engine when results are computed, exactly as the batch pipeline
treats them. The only casting error is a box (contest) that does not
exist.

# Results

GET /contests/{id}/results recomputes the tally from scratch on every
request by handing the stored contest and ballots to tally.Count. The
response body is the same result document batch mode writes to disk.

# Admin Operations

Destructive operations require the contest's admin key (returned at
creation) in the X-Admin-Key header.
*/
package handlers
