// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballotio reads and writes the batch file formats.

# Contest Input

One JSON document:

	{
	  "id": 1,
	  "description": "Favorite language",
	  "choices": [ {"id": 1, "text": "Rust"}, {"id": 2, "text": "Go"} ]
	}

# Ballots Input

JSON lines, one ballot per line:

	{"contest_id": 1, "choice_id": 1}
	{"contest_id": 1, "choice_id": 2}

A blank file is a valid zero-ballot input, and blank lines are skipped.

# Strictness

Parsing fails fast. Malformed JSON, a wrong field type, a missing required
field, or trailing data after the contest document all return an error and
no value — there is no partial object. Missing-field errors wrap
ErrMissingField; ballot errors name the offending line number. Unknown
fields are tolerated.

# Result Output

WriteResult emits the result as one pretty-printed JSON document, with
"winner": null when the contest had no choices.
*/
package ballotio
