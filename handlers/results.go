// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/mwhitby/ballotbox/cliparse"
	"github.com/mwhitby/ballotbox/middleware"
	"github.com/mwhitby/ballotbox/models"
	"github.com/mwhitby/ballotbox/tally"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles GET /contests/{id}/results
// Recomputes the full tally from stored ballots on every call; there is no
// cached or incremental state to invalidate.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	contestID, ok := parseContestID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contest id must be an integer")
		return
	}

	contest, err := getContest(h.db, contestID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Contest not found")
		return
	}
	if err != nil {
		slog.Error("failed to query contest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	ballots, err := getBallots(h.db, contestID)
	if err != nil {
		slog.Error("failed to query ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tally.Count(contest, ballots))
}

// GetBallotCount handles GET /contests/{id}/ballots/count
// Returns the raw number of ballots in the box, counted or not
func (h *ResultsHandler) GetBallotCount(w http.ResponseWriter, r *http.Request) {
	contestID, ok := parseContestID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contest id must be an integer")
		return
	}

	exists, err := contestExists(h.db, contestID)
	if err != nil {
		slog.Error("failed to query contest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Contest not found")
		return
	}

	var count int
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM ballot WHERE box_id = $1
	`, contestID).Scan(&count)
	if err != nil {
		slog.Error("failed to count ballots", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BallotCountResponse{
		BallotCount: count,
	})
}
