package models

import "time"

// Typed identifiers
//
// Each entity gets its own string type so a PollID can never be passed
// where an OptionID is expected. The values themselves are UUIDs.

type AccountID string

type PollID string

type OptionID string

type VoteID string

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Options     []string  `json:"options"`
	UserID      AccountID `json:"userId"`
}

type VoteRequest struct {
	OptionID OptionID  `json:"optionId"`
	UserID   AccountID `json:"userId"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	User Account `json:"user"`
}

type CreatePollResponse struct {
	ID      PollID `json:"id"`
	Message string `json:"message"`
}

type PollViewResponse struct {
	Poll     PollDetail `json:"poll"`
	Options  []Option   `json:"options"`
	HasVoted bool       `json:"hasVoted"`
}

type ResultsResponse struct {
	Poll        PollDetail       `json:"poll"`
	Results     []OptionTally    `json:"results"`
	TotalVotes  int              `json:"total_votes"`
	Percentages map[OptionID]int `json:"percentages"`
}

// Domain types

type Account struct {
	ID       AccountID `json:"id"`
	Username string    `json:"username"`
}

// PollDetail is a poll joined with its creator's username.
type PollDetail struct {
	ID          PollID    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      AccountID `json:"user_id"`
	Username    string    `json:"username"`
}

// PollSummary is a list entry: poll detail plus its total vote count.
type PollSummary struct {
	ID          PollID    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      AccountID `json:"user_id"`
	Username    string    `json:"username"`
	Votes       int       `json:"votes"`
}

type Option struct {
	ID   OptionID `json:"id"`
	Text string   `json:"text"`
}

// OptionTally is an option with its live vote count from the ledger.
type OptionTally struct {
	ID    OptionID `json:"id"`
	Text  string   `json:"text"`
	Votes int      `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
