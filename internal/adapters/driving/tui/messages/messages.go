// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/est22/snatch/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCapture is the text capture and candidate selection view.
	ViewCapture
	// ViewReview is the flashcard review view.
	ViewReview
	// ViewVocabulary is the stored entry browser.
	ViewVocabulary
	// ViewSettings is the language pair configuration view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCapture:
		return "capture"
	case ViewReview:
		return "review"
	case ViewVocabulary:
		return "vocabulary"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// CandidatesClassified carries the candidates produced by the capture
// pipeline back to the capture view.
type CandidatesClassified struct {
	Candidates []domain.WordCandidate
	Err        error
}

// CandidatesAccepted signals that the selected candidates were persisted.
type CandidatesAccepted struct {
	Entries []domain.Entry
	Err     error
}

// SessionStarted carries a new review session, or domain.ErrNoCards when
// nothing is due.
type SessionStarted struct {
	Session *domain.ReviewSession
	Err     error
}

// AnswerSubmitted signals that an answer was applied to the current card.
type AnswerSubmitted struct {
	Err error
}

// EntriesLoaded carries the list of stored entries for the browser.
type EntriesLoaded struct {
	Entries []domain.Entry
	Err     error
}

// EntryDeleted signals an entry was removed.
type EntryDeleted struct {
	ID  string
	Err error
}

// FavoriteToggled signals an entry's favorite flag was flipped.
type FavoriteToggled struct {
	ID       string
	Favorite bool
	Err      error
}

// PairLoaded carries the active language pair.
type PairLoaded struct {
	Pair domain.LanguagePair
	Err  error
}

// PairSaved signals the language pair was updated.
type PairSaved struct {
	Pair domain.LanguagePair
	Err  error
}
