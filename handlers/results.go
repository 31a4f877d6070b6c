package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CodeSpartan007/survey-madness/middleware"
	"github.com/CodeSpartan007/survey-madness/models"
	"github.com/CodeSpartan007/survey-madness/store"
	"github.com/CodeSpartan007/survey-madness/tally"
)

type ResultsHandler struct {
	polls  *store.PollStore
	engine *tally.Engine
}

func NewResultsHandler(polls *store.PollStore, engine *tally.Engine) *ResultsHandler {
	return &ResultsHandler{polls: polls, engine: engine}
}

// Results handles GET /polls/{id}/results
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	pollID := models.PollID(r.PathValue("id"))

	poll, err := h.polls.GetPoll(pollID)
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch poll results")
		return
	}

	results, err := h.engine.Results(pollID)
	if err != nil {
		slog.Error("failed to compute results", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch poll results")
		return
	}

	total, err := h.engine.TotalVotes(pollID)
	if err != nil {
		slog.Error("failed to count votes", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch poll results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Poll:        poll,
		Results:     results,
		TotalVotes:  total,
		Percentages: tally.Percentages(results),
	})
}
