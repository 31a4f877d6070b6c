package router

import (
	"database/sql"
	"net/http"

	"github.com/CodeSpartan007/survey-madness/handlers"
	"github.com/CodeSpartan007/survey-madness/middleware"
	"github.com/CodeSpartan007/survey-madness/store"
	"github.com/CodeSpartan007/survey-madness/tally"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize stores and handlers
	accounts := store.NewAccountStore(db)
	polls := store.NewPollStore(db)
	ledger := store.NewVoteLedger(db)
	engine := tally.NewEngine(db)

	authHandler := handlers.NewAuthHandler(accounts)
	pollHandler := handlers.NewPollHandler(polls, ledger)
	voteHandler := handlers.NewVoteHandler(ledger)
	resultsHandler := handlers.NewResultsHandler(polls, engine)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))

	// Polls
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Voting
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(voteHandler.Vote))

	// Results
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(resultsHandler.Results))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("survey-madness API v1"))
	})

	return mux
}
