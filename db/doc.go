/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - account: registered users (unique usernames)
  - poll: poll metadata (title, description, creator)
  - option: selectable answers per poll
  - vote: the append-only vote ledger

# Relationships

	account 1──* poll
	poll    1──* option
	poll    1──* vote
	option  1──* vote
	account 1──* vote

# Constraints

Two uniqueness constraints carry the core invariants:

  - account.username UNIQUE: no duplicate registrations, even under
    concurrent requests
  - vote (poll_id, user_id) UNIQUE: one vote per account per poll,
    enforced by the database rather than by application checks
*/
package db
