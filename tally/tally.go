// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"github.com/mwhitby/ballotbox/models"
)

// Count tallies ballots against a contest and returns the plurality result.
//
// Ballots whose contest_id does not match the contest, or whose choice_id is
// not declared in the contest, are skipped: they affect neither the per-choice
// counts nor total_votes. Duplicate choice ids share a single counter, and the
// results list carries one entry per declared occurrence (duplicates repeat the
// shared total). The winner is the first-declared choice among those tied for
// the highest count; it is nil only when the contest has no choices.
//
// Count is pure: it never fails, performs no I/O, and does not retain or
// mutate its inputs.
func Count(contest models.Contest, ballots []models.Ballot) models.Result {
	counts := seedCounts(contest)
	total := countInto(counts, contest, ballots)
	return assemble(contest, counts, total)
}

// CountSharded tallies the same way as Count but splits the ballots across
// the given number of shards and merges the partial sums by addition. Output
// is identical to Count for any shard count; per-choice counts are commutative
// sums, so split order cannot matter. The winner is resolved only from the
// merged totals, never from a partial state.
func CountSharded(contest models.Contest, ballots []models.Ballot, shards int) models.Result {
	if shards < 1 {
		shards = 1
	}

	merged := seedCounts(contest)
	total := 0

	chunk := (len(ballots) + shards - 1) / shards
	for start := 0; start < len(ballots); start += chunk {
		end := start + chunk
		if end > len(ballots) {
			end = len(ballots)
		}

		partial := seedCounts(contest)
		total += countInto(partial, contest, ballots[start:end])
		for id, n := range partial {
			merged[id] += n
		}
	}

	return assemble(contest, merged, total)
}

// seedCounts maps every declared choice id to zero. Duplicate ids collapse
// into one shared counter.
func seedCounts(contest models.Contest) map[int]int {
	counts := make(map[int]int, len(contest.Choices))
	for _, c := range contest.Choices {
		counts[c.ID] = 0
	}
	return counts
}

// countInto applies ballots to an existing count map and returns how many
// were actually counted. Only ballots for this contest that reference a
// seeded choice id count.
func countInto(counts map[int]int, contest models.Contest, ballots []models.Ballot) int {
	counted := 0
	for _, b := range ballots {
		if b.ContestID != contest.ID {
			continue
		}
		if _, ok := counts[b.ChoiceID]; !ok {
			continue
		}
		counts[b.ChoiceID]++
		counted++
	}
	return counted
}

// assemble builds the result document from final counts: one entry per
// declared choice occurrence, then the winner scan.
func assemble(contest models.Contest, counts map[int]int, total int) models.Result {
	results := make([]models.TallyEntry, len(contest.Choices))
	for i, c := range contest.Choices {
		results[i] = models.TallyEntry{
			ChoiceID:   c.ID,
			TotalCount: counts[c.ID],
		}
	}

	// A later choice only takes the lead on a strictly greater count, so
	// ties resolve to the earliest declared choice. With a duplicate id the
	// later occurrence sees an equal count and the first occurrence's text
	// stands.
	var winner *models.Winner
	best := -1
	for _, c := range contest.Choices {
		if counts[c.ID] > best {
			best = counts[c.ID]
			winner = &models.Winner{ChoiceID: c.ID, Text: c.Text}
		}
	}

	return models.Result{
		ContestID:  contest.ID,
		TotalVotes: total,
		Results:    results,
		Winner:     winner,
	}
}
