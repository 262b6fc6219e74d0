// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for ballotbox.

# Domain Types

The contest definition and the ballots cast against it:

  - Contest: id, description, and the ordered list of choices
  - Choice: one selectable option (id, text)
  - Ballot: one cast vote (contest_id, choice_id)

# Result Types

Output of the tally engine:

  - TallyEntry: choice_id and its total_count
  - Winner: the leading choice (choice_id, text)
  - Result: contest_id, total_votes, per-choice results, winner (or null)

Result and its children carry the JSON tags that make up the on-disk and
on-the-wire contract:

	{
	  "contest_id": 1,
	  "total_votes": 4,
	  "results": [ {"choice_id": 1, "total_count": 2}, ... ],
	  "winner": {"choice_id": 1, "text": "Rust"}
	}

# Request/Response Types

Serve-mode API payloads:

  - CreateContestRequest / CreateContestResponse
  - CastBallotRequest / CastBallotResponse
  - ImportBallotsResponse
  - BallotCountResponse
  - ErrorResponse: error, message

All types are plain value structs; nothing here is mutated after
construction.
*/
package models
