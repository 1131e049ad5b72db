package domain

import "time"

// ReviewSession is one pass over the shuffled queue of due entries.
// Every card is answered exactly once; a wrong answer does not re-insert
// the card into the current queue, it only makes it due again for the next
// session.
type ReviewSession struct {
	// Queue holds the due entries in the (already shuffled) order they
	// will be shown.
	Queue []Entry

	// Position indexes the card currently being reviewed.
	Position int

	// CorrectCount and WrongCount tally answers for the session summary.
	CorrectCount int
	WrongCount   int

	// StartedAt is when the session began.
	StartedAt time.Time
}

// Current returns the card being reviewed, or false when the session is
// finished.
func (s *ReviewSession) Current() (Entry, bool) {
	if s.Position >= len(s.Queue) {
		return Entry{}, false
	}
	return s.Queue[s.Position], true
}

// Finished reports whether every card has been answered.
func (s *ReviewSession) Finished() bool {
	return s.Position >= len(s.Queue)
}

// Size returns the total number of cards in the session.
func (s *ReviewSession) Size() int {
	return len(s.Queue)
}

// Remaining returns how many cards are still unanswered.
func (s *ReviewSession) Remaining() int {
	if s.Finished() {
		return 0
	}
	return len(s.Queue) - s.Position
}
