package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CodeSpartan007/survey-madness/models"
)

// VoteLedger is the append-only record of votes. Votes are never updated
// or deleted once recorded.
type VoteLedger struct {
	db *sql.DB
}

func NewVoteLedger(db *sql.DB) *VoteLedger {
	return &VoteLedger{db: db}
}

// HasVoted reports whether the account has already voted on the poll.
func (l *VoteLedger) HasVoted(pollID models.PollID, accountID models.AccountID) (bool, error) {
	var exists bool
	err := l.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote WHERE poll_id = $1 AND user_id = $2
		)
	`, pollID, accountID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check prior vote: %w", err)
	}

	return exists, nil
}

// RecordVote records a vote after verifying, inside one transaction, that
// the account has not voted on this poll and that the option belongs to
// it. The prior-vote check is only a fast path: two concurrent requests
// can both pass it, so the UNIQUE (poll_id, user_id) constraint decides,
// and a constraint violation on insert surfaces as ErrAlreadyVoted.
func (l *VoteLedger) RecordVote(pollID models.PollID, optionID models.OptionID, accountID models.AccountID) (models.VoteID, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var voted bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM vote WHERE poll_id = $1 AND user_id = $2
		)
	`, pollID, accountID).Scan(&voted)
	if err != nil {
		return "", fmt.Errorf("failed to check prior vote: %w", err)
	}
	if voted {
		return "", ErrAlreadyVoted
	}

	var belongs bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM option WHERE id = $1 AND poll_id = $2
		)
	`, optionID, pollID).Scan(&belongs)
	if err != nil {
		return "", fmt.Errorf("failed to check option: %w", err)
	}
	if !belongs {
		return "", ErrInvalidOption
	}

	voteID := models.VoteID(uuid.NewString())
	_, err = tx.Exec(`
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, pollID, optionID, accountID, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrAlreadyVoted
		}
		return "", fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return "", ErrAlreadyVoted
		}
		return "", fmt.Errorf("failed to commit vote: %w", err)
	}

	return voteID, nil
}

// CountVotes returns the total number of votes recorded for a poll.
func (l *VoteLedger) CountVotes(pollID models.PollID) (int, error) {
	var count int
	err := l.db.QueryRow(`
		SELECT COUNT(*) FROM vote WHERE poll_id = $1
	`, pollID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	return count, nil
}
