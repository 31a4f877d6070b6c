package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CodeSpartan007/survey-madness/models"
)

// AccountStore manages user identity records.
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// Register creates a new account. Uniqueness of the username is enforced
// by the database constraint, not by a prior SELECT - two concurrent
// registrations of the same name cannot both succeed.
func (s *AccountStore) Register(username, password string) (models.AccountID, error) {
	accountID := models.AccountID(uuid.NewString())

	_, err := s.db.Exec(`
		INSERT INTO account (id, username, password, created_at)
		VALUES ($1, $2, $3, $4)
	`, accountID, username, password, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("failed to insert account: %w", err)
	}

	return accountID, nil
}

// Authenticate returns the account matching the username/password pair,
// or ErrBadCredentials if there is none.
//
// Passwords are compared in plaintext. That mirrors the system this was
// built against and is a known weakness, not a recommendation.
func (s *AccountStore) Authenticate(username, password string) (models.Account, error) {
	var account models.Account
	err := s.db.QueryRow(`
		SELECT id, username FROM account
		WHERE username = $1 AND password = $2
	`, username, password).Scan(&account.ID, &account.Username)

	if err == sql.ErrNoRows {
		return models.Account{}, ErrBadCredentials
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	return account, nil
}

// GetAccount looks up an account by ID.
func (s *AccountStore) GetAccount(id models.AccountID) (models.Account, error) {
	var account models.Account
	err := s.db.QueryRow(`
		SELECT id, username FROM account WHERE id = $1
	`, id).Scan(&account.ID, &account.Username)

	if err == sql.ErrNoRows {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	return account, nil
}
