/*
Package models defines request, response, and domain types for the API.

# Typed Identifiers

Every entity has a distinct ID type (AccountID, PollID, OptionID, VoteID)
so identifiers for different entities cannot be confused at compile time.
All are UUID strings.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, password
  - LoginRequest: username, password
  - CreatePollRequest: title, description, options, userId
  - VoteRequest: optionId, userId

# Response Types

Types for JSON responses:

  - MessageResponse: message
  - LoginResponse: user (id, username)
  - CreatePollResponse: id, message
  - PollViewResponse: poll, options, hasVoted
  - ResultsResponse: poll, results, total_votes, percentages
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Account: registered user (password never serialized)
  - PollDetail: poll joined with creator username
  - PollSummary: poll detail plus total vote count
  - Option: selectable answer
  - OptionTally: option with live vote count
*/
package models
