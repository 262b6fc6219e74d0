// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the serve-mode HTTP routes.

# Routes

Uses Go 1.22+ method-and-pattern routing on the standard ServeMux:

	GET    /health
	POST   /contests
	GET    /contests/{id}
	DELETE /contests/{id}                  (X-Admin-Key required)
	POST   /contests/{id}/ballots
	POST   /contests/{id}/ballots/import
	GET    /contests/{id}/results
	GET    /contests/{id}/ballots/count

# Construction

	mux := router.NewRouter(db, cfg)
	server := http.Server{Handler: middleware.CORS(mux)}

All API routes are wrapped with request logging.
*/
package router
