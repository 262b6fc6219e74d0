// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mwhitby/ballotbox/auth"
	"github.com/mwhitby/ballotbox/cliparse"
	"github.com/mwhitby/ballotbox/middleware"
	"github.com/mwhitby/ballotbox/models"
)

type ContestsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewContestsHandler(db *sql.DB, cfg cliparse.Config) *ContestsHandler {
	return &ContestsHandler{db: db, cfg: cfg}
}

// parseContestID extracts the integer contest id from the request path
func parseContestID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// CreateContest handles POST /contests
func (h *ContestsHandler) CreateContest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// An empty choice list is a valid contest; duplicate choice ids are
	// valid too. Only the contest id itself must be unique.
	exists, err := contestExists(h.db, req.ID)
	if err != nil {
		slog.Error("failed to query contest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusConflict, "Contest already exists")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO contest (id, description, created_at)
		VALUES ($1, $2, $3)
	`, req.ID, req.Description, time.Now())
	if err != nil {
		slog.Error("failed to insert contest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for position, choice := range req.Choices {
		_, err = tx.Exec(`
			INSERT INTO choice (contest_id, position, choice_id, text)
			VALUES ($1, $2, $3, $4)
		`, req.ID, position, choice.ID, choice.Text)
		if err != nil {
			slog.Error("failed to insert choice", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit contest", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateContestResponse{
		ContestID: req.ID,
		AdminKey:  auth.GenerateAdminKey(req.ID, h.cfg.AdminKeySalt),
	})
}

// GetContest handles GET /contests/{id}
func (h *ContestsHandler) GetContest(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, contest)
}

// DeleteContest handles DELETE /contests/{id}
// Requires the contest admin key in the X-Admin-Key header
func (h *ContestsHandler) DeleteContest(w http.ResponseWriter, r *http.Request) {
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

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(contestID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid admin key")
		return
	}

	// Delete children explicitly; sqlite does not enforce cascades unless
	// foreign keys are enabled per connection.
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM ballot WHERE box_id = $1`,
		`DELETE FROM choice WHERE contest_id = $1`,
		`DELETE FROM contest WHERE id = $1`,
	} {
		if _, err := tx.Exec(stmt, contestID); err != nil {
			slog.Error("failed to delete contest", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit delete", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]int{
		"contest_id": contestID,
	})
}
