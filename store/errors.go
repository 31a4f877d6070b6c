package store

import (
	"errors"
	"strings"
)

var (
	// ErrUsernameTaken is returned when registering a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrBadCredentials is returned when no account matches the given
	// username/password pair.
	ErrBadCredentials = errors.New("invalid username or password")

	// ErrInvalidPoll is returned when poll creation input fails
	// validation (empty title or fewer than two options).
	ErrInvalidPoll = errors.New("poll requires a title and at least 2 options")

	// ErrPollNotFound is returned when the referenced poll does not exist.
	ErrPollNotFound = errors.New("poll not found")

	// ErrAccountNotFound is returned when the referenced account does
	// not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAlreadyVoted is returned when an account attempts a second vote
	// on the same poll.
	ErrAlreadyVoted = errors.New("account has already voted on this poll")

	// ErrInvalidOption is returned when the option does not belong to
	// the poll being voted on.
	ErrInvalidOption = errors.New("option does not belong to this poll")
)

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported driver. Detection is by error text, so no driver
// package is imported here.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	// lib/pq (PostgreSQL)
	if strings.Contains(msg, "duplicate key value violates unique constraint") {
		return true
	}
	// modernc.org/sqlite
	return strings.Contains(msg, "UNIQUE constraint failed")
}
