// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballotio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mwhitby/ballotbox/models"
)

// ErrMissingField reports a JSON document that parsed but lacks a required
// field. Callers can match it with errors.Is.
var ErrMissingField = errors.New("missing required field")

// Shadow types with pointer fields so absent and zero-valued fields are
// distinguishable. encoding/json leaves absent fields nil.

type rawChoice struct {
	ID   *int    `json:"id"`
	Text *string `json:"text"`
}

type rawContest struct {
	ID          *int         `json:"id"`
	Description *string      `json:"description"`
	Choices     *[]rawChoice `json:"choices"`
}

type rawBallot struct {
	ContestID *int `json:"contest_id"`
	ChoiceID  *int `json:"choice_id"`
}

// ReadContest parses a single contest JSON document. Any malformed JSON,
// wrong field type, missing required field, or trailing data fails the
// whole read; no partial contest is ever returned.
func ReadContest(r io.Reader) (models.Contest, error) {
	dec := json.NewDecoder(r)

	var raw rawContest
	if err := dec.Decode(&raw); err != nil {
		return models.Contest{}, fmt.Errorf("contest: %w", err)
	}
	if dec.More() {
		return models.Contest{}, errors.New("contest: trailing data after document")
	}

	if raw.ID == nil {
		return models.Contest{}, fmt.Errorf("contest: %w: id", ErrMissingField)
	}
	if raw.Description == nil {
		return models.Contest{}, fmt.Errorf("contest: %w: description", ErrMissingField)
	}
	if raw.Choices == nil {
		return models.Contest{}, fmt.Errorf("contest: %w: choices", ErrMissingField)
	}

	contest := models.Contest{
		ID:          *raw.ID,
		Description: *raw.Description,
		Choices:     make([]models.Choice, len(*raw.Choices)),
	}
	for i, c := range *raw.Choices {
		if c.ID == nil {
			return models.Contest{}, fmt.Errorf("contest: choice %d: %w: id", i, ErrMissingField)
		}
		if c.Text == nil {
			return models.Contest{}, fmt.Errorf("contest: choice %d: %w: text", i, ErrMissingField)
		}
		contest.Choices[i] = models.Choice{ID: *c.ID, Text: *c.Text}
	}

	return contest, nil
}

// ReadBallots parses a JSON-lines ballot stream, one document per line.
// Blank input and blank lines yield no ballots. Any malformed line aborts
// the whole read with an error naming the line number.
func ReadBallots(r io.Reader) ([]models.Ballot, error) {
	ballots := []models.Ballot{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ballot, err := parseBallotLine(line)
		if err != nil {
			return nil, fmt.Errorf("ballots line %d: %w", lineNo, err)
		}
		ballots = append(ballots, ballot)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ballots: %w", err)
	}

	return ballots, nil
}

func parseBallotLine(line string) (models.Ballot, error) {
	var raw rawBallot
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return models.Ballot{}, err
	}
	if raw.ContestID == nil {
		return models.Ballot{}, fmt.Errorf("%w: contest_id", ErrMissingField)
	}
	if raw.ChoiceID == nil {
		return models.Ballot{}, fmt.Errorf("%w: choice_id", ErrMissingField)
	}
	return models.Ballot{ContestID: *raw.ContestID, ChoiceID: *raw.ChoiceID}, nil
}

// WriteResult writes the result as a single pretty-printed JSON document.
func WriteResult(w io.Writer, result models.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("result: %w", err)
	}
	return nil
}
