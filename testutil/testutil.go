// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitby/ballotbox/cliparse"
	"github.com/mwhitby/ballotbox/db"
	"github.com/mwhitby/ballotbox/models"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir with
// the full schema. The file is cleaned up with the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = "file:" + filepath.Join(t.TempDir(), "ballotbox_test.db")

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Serve:        true,
		Port:         4117,
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
	}
}

// CreateTestContest inserts a contest and its choices
func CreateTestContest(t *testing.T, conn *sql.DB, contest models.Contest) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO contest (id, description, created_at)
		VALUES ($1, $2, $3)
	`, contest.ID, contest.Description, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test contest: %v", err)
	}

	for position, choice := range contest.Choices {
		_, err := conn.Exec(`
			INSERT INTO choice (contest_id, position, choice_id, text)
			VALUES ($1, $2, $3, $4)
		`, contest.ID, position, choice.ID, choice.Text)
		if err != nil {
			t.Fatalf("Failed to create test choice: %v", err)
		}
	}
}

// CastTestBallot inserts one ballot into a box and returns its ID
func CastTestBallot(t *testing.T, conn *sql.DB, boxID int, ballot models.Ballot) string {
	t.Helper()

	ballotID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO ballot (id, box_id, contest_id, choice_id, ip_hash, cast_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, ballotID, boxID, ballot.ContestID, ballot.ChoiceID, nil, time.Now())
	if err != nil {
		t.Fatalf("Failed to cast test ballot: %v", err)
	}

	return ballotID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeRawRequest creates an HTTP test request with a raw string body,
// for JSON-lines uploads
func MakeRawRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/x-ndjson")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
