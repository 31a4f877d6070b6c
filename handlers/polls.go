package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/CodeSpartan007/survey-madness/middleware"
	"github.com/CodeSpartan007/survey-madness/models"
	"github.com/CodeSpartan007/survey-madness/store"
)

type PollHandler struct {
	polls  *store.PollStore
	ledger *store.VoteLedger
}

func NewPollHandler(polls *store.PollStore, ledger *store.VoteLedger) *PollHandler {
	return &PollHandler{polls: polls, ledger: ledger}
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListPolls()
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Blank option texts are dropped before the two-option minimum is
	// checked, so ["A", "B", "  "] is fine but ["A", "  "] is not.
	options := make([]string, 0, len(req.Options))
	for _, text := range req.Options {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			options = append(options, trimmed)
		}
	}

	if strings.TrimSpace(req.Title) == "" || len(options) < 2 || req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	pollID, err := h.polls.CreatePoll(strings.TrimSpace(req.Title), req.Description, req.UserID, options)
	if errors.Is(err, store.ErrInvalidPoll) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err != nil {
		slog.Error("failed to create poll", "error", err, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "user_id", req.UserID, "options", len(options))

	middleware.JSONResponse(w, http.StatusOK, models.CreatePollResponse{
		ID:      pollID,
		Message: "Poll created successfully",
	})
}

// GetPoll handles GET /polls/{id}
//
// The optional userId query parameter adds a hasVoted flag so the caller
// can tell whether that account may still vote.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if _, err := uuid.Parse(pollID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid poll ID")
		return
	}

	poll, err := h.polls.GetPoll(models.PollID(pollID))
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch poll")
		return
	}

	options, err := h.polls.GetOptions(poll.ID)
	if err != nil {
		slog.Error("failed to query options", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch poll")
		return
	}

	hasVoted := false
	if userID := r.URL.Query().Get("userId"); userID != "" {
		hasVoted, err = h.ledger.HasVoted(poll.ID, models.AccountID(userID))
		if err != nil {
			slog.Error("failed to check prior vote", "error", err, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch poll")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollViewResponse{
		Poll:     poll,
		Options:  options,
		HasVoted: hasVoted,
	})
}
