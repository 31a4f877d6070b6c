package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/CodeSpartan007/survey-madness/db"
	"github.com/CodeSpartan007/survey-madness/models"
)

// TestDSN is the connection string for the in-memory test database.
// Foreign keys are off by default in SQLite and must be switched on.
const TestDSN = "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The pool is pinned to a single connection: each connection to
// ":memory:" would otherwise see its own empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDSN)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestAccount inserts an account and returns its ID
func CreateTestAccount(t *testing.T, db *sql.DB, username string) models.AccountID {
	t.Helper()

	accountID := models.AccountID(uuid.NewString())
	_, err := db.Exec(`
		INSERT INTO account (id, username, password, created_at)
		VALUES ($1, $2, 'secret', $3)
	`, accountID, username, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}

	return accountID
}

// CreateTestPoll inserts a poll with options and returns the poll ID and
// option IDs in the order of the given texts
func CreateTestPoll(t *testing.T, db *sql.DB, creator models.AccountID, title string, optionTexts ...string) (models.PollID, []models.OptionID) {
	t.Helper()
	return CreateTestPollAt(t, db, creator, title, time.Now().Truncate(time.Second), optionTexts...)
}

// CreateTestPollAt is CreateTestPoll with an explicit creation time, for
// tests that depend on creation-time ordering. Pass whole-second times.
func CreateTestPollAt(t *testing.T, db *sql.DB, creator models.AccountID, title string, createdAt time.Time, optionTexts ...string) (models.PollID, []models.OptionID) {
	t.Helper()

	pollID := models.PollID(uuid.NewString())
	_, err := db.Exec(`
		INSERT INTO poll (id, title, description, user_id, created_at)
		VALUES ($1, $2, '', $3, $4)
	`, pollID, title, creator, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	optionIDs := make([]models.OptionID, 0, len(optionTexts))
	for _, text := range optionTexts {
		optionID := models.OptionID(uuid.NewString())
		_, err := db.Exec(`
			INSERT INTO option (id, poll_id, text)
			VALUES ($1, $2, $3)
		`, optionID, pollID, text)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs = append(optionIDs, optionID)
	}

	return pollID, optionIDs
}

// CastTestVote inserts a vote directly into the ledger
func CastTestVote(t *testing.T, db *sql.DB, pollID models.PollID, optionID models.OptionID, accountID models.AccountID) models.VoteID {
	t.Helper()

	voteID := models.VoteID(uuid.NewString())
	_, err := db.Exec(`
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, pollID, optionID, accountID, time.Now())
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}

	return voteID
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
