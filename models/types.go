// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreateContestRequest struct {
	ID          int      `json:"id"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

type CastBallotRequest struct {
	// Optional; defaults to the contest the ballot was posted to
	ContestID *int `json:"contest_id,omitempty"`
	ChoiceID  int  `json:"choice_id"`
}

// Response types

type CreateContestResponse struct {
	ContestID int    `json:"contest_id"`
	AdminKey  string `json:"admin_key"`
}

type CastBallotResponse struct {
	BallotID string `json:"ballot_id"`
}

type ImportBallotsResponse struct {
	Imported int `json:"imported"`
}

type BallotCountResponse struct {
	BallotCount int `json:"ballot_count"`
}

// Domain types

type Contest struct {
	ID          int      `json:"id"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

type Choice struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type Ballot struct {
	ContestID int `json:"contest_id"`
	ChoiceID  int `json:"choice_id"`
}

// Result types

type TallyEntry struct {
	ChoiceID   int `json:"choice_id"`
	TotalCount int `json:"total_count"`
}

// Winner is the leading choice. The serialized field is choice_id, not id,
// to match the result document contract.
type Winner struct {
	ChoiceID int    `json:"choice_id"`
	Text     string `json:"text"`
}

// Winner is nil (serialized as null) when the contest has no choices.
type Result struct {
	ContestID  int          `json:"contest_id"`
	TotalVotes int          `json:"total_votes"`
	Results    []TallyEntry `json:"results"`
	Winner     *Winner      `json:"winner"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
