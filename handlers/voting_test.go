package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CodeSpartan007/survey-madness/models"
	"github.com/CodeSpartan007/survey-madness/store"
	"github.com/CodeSpartan007/survey-madness/testutil"
)

func TestVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewVoteHandler(store.NewVoteLedger(db))

	creator := testutil.CreateTestAccount(t, db, "alice")
	voter := testutil.CreateTestAccount(t, db, "bob")
	pollID, opts := testutil.CreateTestPoll(t, db, creator, "Best fruit?", "Apple", "Banana")

	tests := []struct {
		name            string
		pollID          models.PollID
		requestBody     interface{}
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:   "missing option id",
			pollID: pollID,
			requestBody: models.VoteRequest{
				UserID: voter,
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Missing required fields",
		},
		{
			name:   "missing user id",
			pollID: pollID,
			requestBody: models.VoteRequest{
				OptionID: opts[0],
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Missing required fields",
		},
		{
			name:   "valid vote",
			pollID: pollID,
			requestBody: models.VoteRequest{
				OptionID: opts[0],
				UserID:   voter,
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Vote recorded successfully",
		},
		{
			name:   "second vote on same poll",
			pollID: pollID,
			requestBody: models.VoteRequest{
				OptionID: opts[1],
				UserID:   voter,
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "You have already voted on this poll",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/polls/"+string(tt.pollID)+"/vote", tt.requestBody, nil)
			req.SetPathValue("id", string(tt.pollID))
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.MessageResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != tt.expectedMessage {
					t.Errorf("Expected message %q, got %q", tt.expectedMessage, resp.Message)
				}
			} else {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != tt.expectedMessage {
					t.Errorf("Expected message %q, got %q", tt.expectedMessage, resp.Message)
				}
			}
		})
	}

	// The rejected second vote must not have reached the ledger
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1 AND user_id = $2", pollID, voter).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 vote in ledger, got %d", count)
	}
}

func TestVoteOptionFromAnotherPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewVoteHandler(store.NewVoteLedger(db))

	creator := testutil.CreateTestAccount(t, db, "alice")
	voter := testutil.CreateTestAccount(t, db, "bob")
	pollID, _ := testutil.CreateTestPoll(t, db, creator, "Best fruit?", "Apple", "Banana")
	_, otherOpts := testutil.CreateTestPoll(t, db, creator, "Best color?", "Red", "Blue")

	// The option exists, but under a different poll
	req := testutil.MakeRequest("POST", "/polls/"+string(pollID)+"/vote", models.VoteRequest{
		OptionID: otherOpts[0],
		UserID:   voter,
	}, nil)
	req.SetPathValue("id", string(pollID))
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Invalid option for this poll" {
		t.Errorf("Expected invalid-option message, got %q", resp.Message)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1", pollID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no votes recorded, got %d", count)
	}
}

func TestVoteOnUnknownPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewVoteHandler(store.NewVoteLedger(db))

	creator := testutil.CreateTestAccount(t, db, "alice")
	voter := testutil.CreateTestAccount(t, db, "bob")
	_, opts := testutil.CreateTestPoll(t, db, creator, "Best fruit?", "Apple", "Banana")

	unknown := "00000000-0000-0000-0000-000000000000"
	req := testutil.MakeRequest("POST", "/polls/"+unknown+"/vote", models.VoteRequest{
		OptionID: opts[0],
		UserID:   voter,
	}, nil)
	req.SetPathValue("id", unknown)
	w := httptest.NewRecorder()

	handler.Vote(w, req)

	// No option belongs to a poll that does not exist
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Invalid option for this poll" {
		t.Errorf("Expected invalid-option message, got %q", resp.Message)
	}
}
