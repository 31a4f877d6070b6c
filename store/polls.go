package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CodeSpartan007/survey-madness/models"
)

// PollStore manages poll metadata and the options owned by each poll.
type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// CreatePoll inserts a poll together with all of its options in a single
// transaction. A failure on any insert rolls everything back, so a
// partially created poll is never visible to other operations.
func (s *PollStore) CreatePoll(title, description string, creatorID models.AccountID, optionTexts []string) (models.PollID, error) {
	if title == "" || len(optionTexts) < 2 {
		return "", ErrInvalidPoll
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	pollID := models.PollID(uuid.NewString())
	_, err = tx.Exec(`
		INSERT INTO poll (id, title, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pollID, title, description, creatorID, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to insert poll: %w", err)
	}

	for _, text := range optionTexts {
		optionID := models.OptionID(uuid.NewString())
		_, err = tx.Exec(`
			INSERT INTO option (id, poll_id, text)
			VALUES ($1, $2, $3)
		`, optionID, pollID, text)
		if err != nil {
			return "", fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit poll creation: %w", err)
	}

	return pollID, nil
}

// GetPoll returns the poll joined with its creator's username.
func (s *PollStore) GetPoll(pollID models.PollID) (models.PollDetail, error) {
	var poll models.PollDetail
	err := s.db.QueryRow(`
		SELECT p.id, p.title, p.description, p.created_at, p.user_id, a.username
		FROM poll p
		JOIN account a ON p.user_id = a.id
		WHERE p.id = $1
	`, pollID).Scan(
		&poll.ID, &poll.Title, &poll.Description,
		&poll.CreatedAt, &poll.UserID, &poll.Username,
	)

	if err == sql.ErrNoRows {
		return models.PollDetail{}, ErrPollNotFound
	}
	if err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to query poll: %w", err)
	}

	return poll, nil
}

// ListPolls returns every poll with its creator username and total vote
// count, ordered by vote count descending and then creation time
// descending (newer polls rank above older ones on equal counts).
//
// Counts come straight from the vote table on every call.
func (s *PollStore) ListPolls() ([]models.PollSummary, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.description, p.created_at, p.user_id, a.username,
		       COALESCE((SELECT COUNT(*) FROM vote v WHERE v.poll_id = p.id), 0) AS votes
		FROM poll p
		JOIN account a ON p.user_id = a.id
		ORDER BY votes DESC, p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.PollSummary{}
	for rows.Next() {
		var p models.PollSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.UserID, &p.Username, &p.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}

	return polls, nil
}

// GetOptions returns the options belonging to a poll in stable order.
func (s *PollStore) GetOptions(pollID models.PollID) ([]models.Option, error) {
	rows, err := s.db.Query(`
		SELECT id, text FROM option
		WHERE poll_id = $1
		ORDER BY id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Text); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate options: %w", err)
	}

	return options, nil
}
