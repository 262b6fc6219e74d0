// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/mwhitby/ballotbox/cliparse"
	"github.com/mwhitby/ballotbox/handlers"
	"github.com/mwhitby/ballotbox/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	contestsHandler := handlers.NewContestsHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Contest management
	mux.HandleFunc("POST /contests", middleware.WithLogging(contestsHandler.CreateContest))
	mux.HandleFunc("GET /contests/{id}", middleware.WithLogging(contestsHandler.GetContest))
	mux.HandleFunc("DELETE /contests/{id}", middleware.WithLogging(contestsHandler.DeleteContest))

	// Voting operations
	mux.HandleFunc("POST /contests/{id}/ballots", middleware.WithLogging(votingHandler.CastBallot))
	mux.HandleFunc("POST /contests/{id}/ballots/import", middleware.WithLogging(votingHandler.ImportBallots))

	// Results retrieval
	mux.HandleFunc("GET /contests/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /contests/{id}/ballots/count", middleware.WithLogging(resultsHandler.GetBallotCount))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
