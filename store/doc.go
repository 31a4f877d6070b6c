/*
Package store implements data access for accounts, polls, and votes.

# Stores

Each store is a struct wrapping *sql.DB, created via a constructor:

	accounts := store.NewAccountStore(db)
	polls := store.NewPollStore(db)
	ledger := store.NewVoteLedger(db)

  - AccountStore: registration and authentication
  - PollStore: atomic poll+options creation, lookup, listing
  - VoteLedger: append-only vote recording with one-vote enforcement

# Atomicity

Multi-step writes run inside transactions with deferred rollback:

  - CreatePoll inserts the poll row and every option row as one unit
  - RecordVote checks prior-vote and option-containment, then inserts

The check-then-insert sequences are guarded by database constraints
(account.username UNIQUE, vote (poll_id, user_id) UNIQUE). When a race
slips past the in-transaction check, the constraint violation is mapped
back to the same sentinel error the check would have produced.

# Errors

Failures callers can act on are sentinel errors: ErrUsernameTaken,
ErrBadCredentials, ErrInvalidPoll, ErrPollNotFound, ErrAccountNotFound,
ErrAlreadyVoted, ErrInvalidOption. Everything else is wrapped with
context via fmt.Errorf %w.
*/
package store
