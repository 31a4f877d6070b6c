/*
Package main provides the entry point for the survey-madness API server.

survey-madness is a polling service: users register, create polls with
multiple options, cast one vote per poll, and view live ranked results.

# Starting the Server

The server requires a database URL via environment variable or flag:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

  - DATABASE_URL (-d): connection string (required)
  - DATABASE_TYPE (-t): "postgres" (default) or "sqlite"
  - PORT (-p): server port (default: 3000)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - store: Data access (accounts, polls, the vote ledger)
  - tally: Live results aggregation
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and typed identifiers
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
