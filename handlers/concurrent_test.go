package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/CodeSpartan007/survey-madness/models"
	"github.com/CodeSpartan007/survey-madness/store"
	"github.com/CodeSpartan007/survey-madness/testutil"
)

// TestConcurrentVotesSameAccount verifies that when one account fires
// many simultaneous votes at the same poll, exactly one lands and the
// rest are rejected as duplicates. The UNIQUE (poll_id, user_id)
// constraint is what decides the race, not the pre-insert check.
func TestConcurrentVotesSameAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewVoteHandler(store.NewVoteLedger(db))

	creator := testutil.CreateTestAccount(t, db, "alice")
	voter := testutil.CreateTestAccount(t, db, "bob")
	pollID, opts := testutil.CreateTestPoll(t, db, creator, "Contested poll", "A", "B", "C")

	numAttempts := 10
	var successCount atomic.Int32
	var duplicateCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(attempt int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/polls/"+string(pollID)+"/vote", models.VoteRequest{
				OptionID: opts[attempt%len(opts)],
				UserID:   voter,
			}, nil)
			req.SetPathValue("id", string(pollID))
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			switch w.Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusBadRequest:
				duplicateCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}
	if duplicateCount.Load() != int32(numAttempts-1) {
		t.Errorf("Expected %d rejected votes, got %d", numAttempts-1, duplicateCount.Load())
	}

	// The ledger holds exactly one vote for this account
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1 AND user_id = $2", pollID, voter).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 vote in ledger, got %d", count)
	}
}

// TestConcurrentVotesDistinctAccounts verifies that simultaneous votes
// from different accounts all succeed without corruption
func TestConcurrentVotesDistinctAccounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewVoteHandler(store.NewVoteLedger(db))

	creator := testutil.CreateTestAccount(t, db, "alice")
	pollID, opts := testutil.CreateTestPoll(t, db, creator, "Popular poll", "A", "B")

	numVoters := 10
	voters := make([]models.AccountID, numVoters)
	for i := 0; i < numVoters; i++ {
		voters[i] = testutil.CreateTestAccount(t, db, fmt.Sprintf("voter%d", i))
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/polls/"+string(pollID)+"/vote", models.VoteRequest{
				OptionID: opts[idx%2],
				UserID:   voters[idx],
			}, nil)
			req.SetPathValue("id", string(pollID))
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1", pollID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if count != numVoters {
		t.Errorf("Expected %d votes in ledger, got %d", numVoters, count)
	}

	var uniqueVoters int
	err = db.QueryRow("SELECT COUNT(DISTINCT user_id) FROM vote WHERE poll_id = $1", pollID).Scan(&uniqueVoters)
	if err != nil {
		t.Fatalf("Failed to count unique voters: %v", err)
	}
	if uniqueVoters != numVoters {
		t.Errorf("Expected %d unique voters, got %d (possible duplicates)", numVoters, uniqueVoters)
	}
}

// TestConcurrentRegistrations verifies that when several goroutines
// register the same username, exactly one succeeds
func TestConcurrentRegistrations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewAuthHandler(store.NewAccountStore(db))

	contestedUsername := "RaceConditionUser"
	numAttempts := 5

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/auth/register", models.RegisterRequest{
				Username: contestedUsername,
				Password: "pw",
			}, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful registration, got %d", successCount.Load())
	}

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM account WHERE username = $1", contestedUsername).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count accounts: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 account in database, got %d", count)
	}
}

// TestParallelPollCreation verifies that poll creation on different
// polls does not interfere
func TestParallelPollCreation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPollHandler(store.NewPollStore(db), store.NewVoteLedger(db))
	creator := testutil.CreateTestAccount(t, db, "alice")

	numPolls := 5
	var wg sync.WaitGroup

	for i := 0; i < numPolls; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
				Title:   fmt.Sprintf("Parallel poll %d", idx),
				Options: []string{"Yes", "No", "Maybe"},
				UserID:  creator,
			}, nil)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Poll %d creation failed: %d", idx, w.Code)
			}
		}(i)
	}

	wg.Wait()

	var pollCount, optionCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM poll").Scan(&pollCount); err != nil {
		t.Fatalf("Failed to count polls: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM option").Scan(&optionCount); err != nil {
		t.Fatalf("Failed to count options: %v", err)
	}

	if pollCount != numPolls {
		t.Errorf("Expected %d polls, got %d", numPolls, pollCount)
	}
	if optionCount != numPolls*3 {
		t.Errorf("Expected %d options, got %d", numPolls*3, optionCount)
	}
}
