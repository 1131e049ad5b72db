package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category tags a vocabulary entry. Entries are created as CategoryLearning
// or CategoryNative; users may retag them freely later.
type Category string

// Categories assigned at capture time. The type is deliberately open:
// any non-empty string is a valid user-defined category.
const (
	CategoryLearning Category = "learning"
	CategoryNative   Category = "native"
	CategoryNoun     Category = "noun"
	CategoryVerb     Category = "verb"
	CategoryPhrase   Category = "phrase"
)

// MaxBoxLevel is the highest Leitner box. Correct answers saturate here.
const MaxBoxLevel = 4

// reviewIntervals maps a Leitner box level to the delay until the next
// review. Box 0 is always due immediately.
var reviewIntervals = [MaxBoxLevel + 1]time.Duration{
	0,
	24 * time.Hour,
	3 * 24 * time.Hour,
	7 * 24 * time.Hour,
	14 * 24 * time.Hour,
}

// ReviewInterval returns the delay until the next review for a box level.
// Levels outside [0, MaxBoxLevel] are clamped.
func ReviewInterval(boxLevel int) time.Duration {
	if boxLevel < 0 {
		boxLevel = 0
	}
	if boxLevel > MaxBoxLevel {
		boxLevel = MaxBoxLevel
	}
	return reviewIntervals[boxLevel]
}

// Entry is a captured vocabulary item scheduled for spaced-repetition
// review. Entries are created when the user accepts a WordCandidate and are
// only mutated by review transitions, retagging and the favorite toggle.
type Entry struct {
	// ID is the unique identifier for the entry.
	ID string

	// Word is the captured fragment text.
	Word string

	// LangCode is the normalized language of the fragment.
	LangCode LangCode

	// ExampleSentence is the usage context. May equal Word for
	// single-word captures.
	ExampleSentence string

	// SourceText is the full original input the fragment came from.
	SourceText string

	// Category is the entry tag, "learning" or "native" at capture time.
	Category Category

	// BoxLevel is the Leitner box, in [0, MaxBoxLevel]. New entries
	// start at 0.
	BoxLevel int

	// LastReviewedAt is nil until the first review.
	LastReviewedAt *time.Time

	// NextReviewAt is the scheduled review time. Nil means due
	// immediately. When set it is always derived from BoxLevel via
	// ReviewInterval.
	NextReviewAt *time.Time

	// CreatedAt is set at creation and never changes.
	CreatedAt time.Time

	// IsFavorite marks user-starred entries.
	IsFavorite bool
}

// NewEntry creates an entry from an accepted candidate. The entry starts in
// box 0 with no review timestamps, which makes it immediately due.
func NewEntry(c WordCandidate, now time.Time) Entry {
	category := CategoryNative
	if c.IsLearningLanguage {
		category = CategoryLearning
	}

	example := c.Text
	return Entry{
		ID:              uuid.NewString(),
		Word:            c.Text,
		LangCode:        c.LangCode,
		ExampleSentence: example,
		SourceText:      c.FullSourceText,
		Category:        category,
		BoxLevel:        0,
		CreatedAt:       now.UTC(),
	}
}

// EntryFilter narrows List queries against the entry store.
// Zero values mean "no constraint".
type EntryFilter struct {
	// LangCode keeps only entries in the given language.
	LangCode LangCode

	// FavoritesOnly keeps only starred entries.
	FavoritesOnly bool

	// Search keeps entries whose word or example sentence contains the
	// given substring (case-insensitive).
	Search string

	// DueBefore keeps entries due at or before the given time, including
	// entries that have never been scheduled.
	DueBefore *time.Time
}
