// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitby/ballotbox/auth"
	"github.com/mwhitby/ballotbox/ballotio"
	"github.com/mwhitby/ballotbox/cliparse"
	"github.com/mwhitby/ballotbox/middleware"
	"github.com/mwhitby/ballotbox/models"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// CastBallot handles POST /contests/{id}/ballots
//
// A ballot is accepted as long as the box exists. A claimed contest_id or
// choice_id that references nothing is stored verbatim; the tally engine
// filters it out at counting time. That matches the batch pipeline, where
// stray ballots are data, not errors.
func (h *VotingHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	boxID, ok := parseContestID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contest id must be an integer")
		return
	}

	exists, err := contestExists(h.db, boxID)
	if err != nil {
		slog.Error("failed to query contest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Contest not found")
		return
	}

	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Omitted contest_id claims the box it was posted to
	claimed := boxID
	if req.ContestID != nil {
		claimed = *req.ContestID
	}

	ballotID := uuid.NewString()
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)

	_, err = h.db.Exec(`
		INSERT INTO ballot (id, box_id, contest_id, choice_id, ip_hash, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, ballotID, boxID, claimed, req.ChoiceID, ipHash, time.Now())
	if err != nil {
		slog.Error("failed to insert ballot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastBallotResponse{
		BallotID: ballotID,
	})
}

// ImportBallots handles POST /contests/{id}/ballots/import
//
// The body is the batch JSON-lines ballot format. Parsing is all-or-nothing:
// any malformed line rejects the whole upload and stores nothing.
func (h *VotingHandler) ImportBallots(w http.ResponseWriter, r *http.Request) {
	boxID, ok := parseContestID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contest id must be an integer")
		return
	}

	exists, err := contestExists(h.db, boxID)
	if err != nil {
		slog.Error("failed to query contest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Contest not found")
		return
	}

	defer r.Body.Close()
	ballots, err := ballotio.ReadBallots(r.Body)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	now := time.Now()
	for _, b := range ballots {
		_, err := tx.Exec(`
			INSERT INTO ballot (id, box_id, contest_id, choice_id, ip_hash, cast_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.NewString(), boxID, b.ContestID, b.ChoiceID, ipHash, now)
		if err != nil {
			slog.Error("failed to insert imported ballot", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit import", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ImportBallotsResponse{
		Imported: len(ballots),
	})
}
