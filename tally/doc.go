/*
Package tally computes poll results from the vote ledger.

Results and TotalVotes query the database on every call; there is no
cache that can drift from the recorded votes:

	engine := tally.NewEngine(db)
	results, err := engine.Results(pollID)
	total, err := engine.TotalVotes(pollID)

Percentages is a pure function layered on top:

	shares := tally.Percentages(results)
*/
package tally
