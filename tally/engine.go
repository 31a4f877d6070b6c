package tally

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/CodeSpartan007/survey-madness/models"
)

// Engine computes per-option tallies and totals straight from the vote
// table. Nothing is cached, so results always reflect the ledger at
// query time.
type Engine struct {
	db *sql.DB
}

func NewEngine(db *sql.DB) *Engine {
	return &Engine{db: db}
}

// Results returns every option of the poll with its vote count (zero
// included), ordered by vote count descending. Ties keep a stable order
// by option ID.
func (e *Engine) Results(pollID models.PollID) ([]models.OptionTally, error) {
	rows, err := e.db.Query(`
		SELECT o.id, o.text, COUNT(v.id) AS votes
		FROM option o
		LEFT JOIN vote v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.text
		ORDER BY votes DESC, o.id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []models.OptionTally{}
	for rows.Next() {
		var t models.OptionTally
		if err := rows.Scan(&t.ID, &t.Text, &t.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}

	return results, nil
}

// TotalVotes returns the number of votes cast on the poll.
func (e *Engine) TotalVotes(pollID models.PollID) (int, error) {
	var total int
	err := e.db.QueryRow(`
		SELECT COUNT(*) FROM vote WHERE poll_id = $1
	`, pollID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}

	return total, nil
}

// Percentages derives the percentage share per option, rounded to the
// nearest integer. All zeros when no votes have been cast. Stateless:
// it only looks at the tallies passed in.
func Percentages(results []models.OptionTally) map[models.OptionID]int {
	total := 0
	for _, r := range results {
		total += r.Votes
	}

	percentages := make(map[models.OptionID]int, len(results))
	for _, r := range results {
		if total == 0 {
			percentages[r.ID] = 0
			continue
		}
		percentages[r.ID] = int(math.Round(float64(r.Votes) / float64(total) * 100))
	}

	return percentages
}
