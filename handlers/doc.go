/*
Package handlers contains HTTP request handlers for the survey-madness API.

# Handler Types

Each handler is a struct with its store dependencies, created via a
constructor:

	authHandler := handlers.NewAuthHandler(accounts)
	pollHandler := handlers.NewPollHandler(polls, ledger)
	voteHandler := handlers.NewVoteHandler(ledger)
	resultsHandler := handlers.NewResultsHandler(polls, engine)

  - AuthHandler: registration and login
  - PollHandler: poll listing, atomic creation, detail view
  - VoteHandler: vote submission
  - ResultsHandler: live tallies and percentages

# Request Flow

Handlers validate input at the boundary, delegate to the stores, and map
store errors to HTTP statuses:

	ErrUsernameTaken  → 400 "Username already exists"
	ErrBadCredentials → 401 "Invalid username or password"
	ErrPollNotFound   → 404 "Poll not found"
	ErrAlreadyVoted   → 400 "You have already voted on this poll"
	ErrInvalidOption  → 400 "Invalid option for this poll"
	anything else     → 500, logged with context

# Identity

There is no ambient session: every operation that needs an account takes
an explicit userId in the request body or query string.
*/
package handlers
