// Copyright (c) 2026 Morgan Whitby.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/mwhitby/ballotbox/auth"
	"github.com/mwhitby/ballotbox/models"
	"github.com/mwhitby/ballotbox/testutil"
)

func TestCreateContest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewContestsHandler(conn, cfg)

	req := testutil.MakeRequest("POST", "/contests", models.CreateContestRequest{
		ID:          1,
		Description: "Favorite language",
		Choices: []models.Choice{
			{ID: 1, Text: "Rust"},
			{ID: 2, Text: "Go"},
		},
	}, nil)
	w := httptest.NewRecorder()

	h.CreateContest(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.CreateContestResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.ContestID != 1 {
		t.Errorf("expected contest_id 1, got %d", resp.ContestID)
	}
	if err := auth.ValidateAdminKey(1, resp.AdminKey, cfg.AdminKeySalt); err != nil {
		t.Errorf("returned admin key does not validate: %v", err)
	}
}

func TestCreateContest_Duplicate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewContestsHandler(conn, testutil.GetTestConfig())

	body := models.CreateContestRequest{ID: 1, Description: "First"}

	w := httptest.NewRecorder()
	h.CreateContest(w, testutil.MakeRequest("POST", "/contests", body, nil))
	testutil.AssertStatus(t, w, 201)

	w = httptest.NewRecorder()
	h.CreateContest(w, testutil.MakeRequest("POST", "/contests", body, nil))
	testutil.AssertStatus(t, w, 409)
}

func TestCreateContest_InvalidJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewContestsHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRawRequest("POST", "/contests", "{broken")
	w := httptest.NewRecorder()

	h.CreateContest(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestGetContest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewContestsHandler(conn, testutil.GetTestConfig())

	testutil.CreateTestContest(t, conn, models.Contest{
		ID:          7,
		Description: "Lunch vote",
		Choices: []models.Choice{
			{ID: 3, Text: "Tacos"},
			{ID: 1, Text: "Ramen"},
			{ID: 2, Text: "Pizza"},
		},
	})

	req := testutil.MakeRequest("GET", "/contests/7", nil, nil)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()

	h.GetContest(w, req)

	testutil.AssertStatus(t, w, 200)

	var contest models.Contest
	testutil.AssertJSON(t, w, &contest)

	if contest.ID != 7 || contest.Description != "Lunch vote" {
		t.Errorf("unexpected contest: %+v", contest)
	}
	// Choices must come back in declaration order, not id order
	if len(contest.Choices) != 3 || contest.Choices[0].Text != "Tacos" || contest.Choices[2].Text != "Pizza" {
		t.Errorf("choices out of declaration order: %v", contest.Choices)
	}
}

func TestGetContest_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewContestsHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/contests/99", nil, nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	h.GetContest(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestGetContest_BadID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	h := NewContestsHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/contests/abc", nil, nil)
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	h.GetContest(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestDeleteContest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewContestsHandler(conn, cfg)

	testutil.CreateTestContest(t, conn, models.Contest{
		ID:          5,
		Description: "Short-lived",
		Choices:     []models.Choice{{ID: 1, Text: "A"}},
	})
	testutil.CastTestBallot(t, conn, 5, models.Ballot{ContestID: 5, ChoiceID: 1})

	t.Run("rejects missing admin key", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/contests/5", nil, nil)
		req.SetPathValue("id", "5")
		w := httptest.NewRecorder()

		h.DeleteContest(w, req)

		testutil.AssertStatus(t, w, 403)
	})

	t.Run("rejects wrong admin key", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/contests/5", nil, map[string]string{
			"X-Admin-Key": auth.GenerateAdminKey(6, cfg.AdminKeySalt),
		})
		req.SetPathValue("id", "5")
		w := httptest.NewRecorder()

		h.DeleteContest(w, req)

		testutil.AssertStatus(t, w, 403)
	})

	t.Run("deletes with valid key", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/contests/5", nil, map[string]string{
			"X-Admin-Key": auth.GenerateAdminKey(5, cfg.AdminKeySalt),
		})
		req.SetPathValue("id", "5")
		w := httptest.NewRecorder()

		h.DeleteContest(w, req)

		testutil.AssertStatus(t, w, 200)

		// Contest and children are gone
		var n int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM contest WHERE id = $1`, 5).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Error("contest row survived delete")
		}
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ballot WHERE box_id = $1`, 5).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Error("ballot rows survived delete")
		}
	})

	t.Run("404 after delete", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/contests/5", nil, nil)
		req.SetPathValue("id", "5")
		w := httptest.NewRecorder()

		h.DeleteContest(w, req)

		testutil.AssertStatus(t, w, 404)
	})
}
