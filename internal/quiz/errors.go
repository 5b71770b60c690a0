package quiz

import "errors"

var (
	// ErrNoMistakesTracked is returned when a review session is requested
	// but no discovered item has a recorded mistake. No session is created
	// and no state is mutated.
	ErrNoMistakesTracked = errors.New("no mistakes tracked for review")

	// ErrNoActiveSession is returned when an operation requires an active
	// session and the learner has none.
	ErrNoActiveSession = errors.New("no active quiz session")

	// ErrHintPending is returned when an answer is submitted for a question
	// whose mnemonic request is still in flight.
	ErrHintPending = errors.New("hint request still pending")
)
