// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally implements first-past-the-post vote counting.

# Counting

Count is the whole engine:

	result := tally.Count(contest, ballots)

It seeds a zero count for every declared choice, applies each ballot in
order, and emits one TallyEntry per declared choice occurrence in
declaration order.

# Filtering

Two kinds of ballots are silently skipped rather than rejected:

  - contest_id does not match the contest
  - choice_id is not declared in the contest

Skipped ballots count toward nothing, including total_votes. Filtering is
a data policy, not an error: the engine never fails.

# Winner

The winner is the first-declared choice among those tied for the highest
count. The tie-break applies whenever the contest has at least one choice,
so an all-zero tally still names the first declared choice. Winner is nil
only for a contest with no choices.

# Duplicate choice ids

Duplicate ids share one counter. The results list still emits an entry per
declared occurrence (both showing the shared total), and the winner text
comes from the first occurrence.

# Sharding

CountSharded splits the ballot slice into shards, counts each shard
independently, and merges by addition before resolving the winner. It
exists for very large ballot files and is output-identical to Count.
*/
package tally
