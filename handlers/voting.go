package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CodeSpartan007/survey-madness/middleware"
	"github.com/CodeSpartan007/survey-madness/models"
	"github.com/CodeSpartan007/survey-madness/store"
)

type VoteHandler struct {
	ledger *store.VoteLedger
}

func NewVoteHandler(ledger *store.VoteLedger) *VoteHandler {
	return &VoteHandler{ledger: ledger}
}

// Vote handles POST /polls/{id}/vote
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Poll ID is missing")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.OptionID == "" || req.UserID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	voteID, err := h.ledger.RecordVote(models.PollID(pollID), req.OptionID, req.UserID)
	if errors.Is(err, store.ErrAlreadyVoted) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "You have already voted on this poll")
		return
	}
	if errors.Is(err, store.ErrInvalidOption) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option for this poll")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "poll_id", pollID, "user_id", req.UserID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "vote_id", voteID, "poll_id", pollID, "user_id", req.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote recorded successfully",
	})
}
