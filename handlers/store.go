// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"

	"github.com/mwhitby/ballotbox/models"
)

// getContest loads a contest and its choices in declaration order.
// Returns sql.ErrNoRows when the contest does not exist.
func getContest(db *sql.DB, contestID int) (models.Contest, error) {
	var contest models.Contest
	err := db.QueryRow(`
		SELECT id, description FROM contest WHERE id = $1
	`, contestID).Scan(&contest.ID, &contest.Description)
	if err != nil {
		return models.Contest{}, err
	}

	rows, err := db.Query(`
		SELECT choice_id, text
		FROM choice
		WHERE contest_id = $1
		ORDER BY position
	`, contestID)
	if err != nil {
		return models.Contest{}, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	contest.Choices = []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.Text); err != nil {
			return models.Contest{}, fmt.Errorf("failed to scan choice: %w", err)
		}
		contest.Choices = append(contest.Choices, c)
	}

	return contest, rows.Err()
}

// getBallots loads every ballot dropped into the given box, in cast order,
// as the claimed (contest_id, choice_id) pairs the tally engine consumes.
func getBallots(db *sql.DB, boxID int) ([]models.Ballot, error) {
	rows, err := db.Query(`
		SELECT contest_id, choice_id
		FROM ballot
		WHERE box_id = $1
		ORDER BY cast_at, id
	`, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ballots: %w", err)
	}
	defer rows.Close()

	ballots := []models.Ballot{}
	for rows.Next() {
		var b models.Ballot
		if err := rows.Scan(&b.ContestID, &b.ChoiceID); err != nil {
			return nil, fmt.Errorf("failed to scan ballot: %w", err)
		}
		ballots = append(ballots, b)
	}

	return ballots, rows.Err()
}

// contestExists reports whether a contest row is present.
func contestExists(db *sql.DB, contestID int) (bool, error) {
	var id int
	err := db.QueryRow(`
		SELECT id FROM contest WHERE id = $1
	`, contestID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
