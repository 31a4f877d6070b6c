/*
Package router defines HTTP routes for the survey-madness API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db)

# Endpoints

Health:

	GET /health

Authentication:

	POST /auth/register - Register a new account
	POST /auth/login    - Authenticate, returns the account

Polls:

	GET  /polls         - List polls ranked by votes, then recency
	POST /polls         - Create a poll with its options atomically
	GET  /polls/{id}    - Poll detail with options and hasVoted

Voting and results:

	POST /polls/{id}/vote    - Cast a vote (one per account per poll)
	GET  /polls/{id}/results - Live per-option tallies and percentages

# Handler Initialization

The router wires stores and handlers with dependency injection:

	accounts := store.NewAccountStore(db)
	polls := store.NewPollStore(db)
	ledger := store.NewVoteLedger(db)
	engine := tally.NewEngine(db)

Handlers receive only the stores they use.
*/
package router
