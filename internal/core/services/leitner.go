package services

import (
	"math/rand"
	"time"

	"github.com/est22/snatch/internal/core/domain"
)

// The Leitner engine is a set of pure, stateless functions over entry
// review metadata. Persistence and session bookkeeping live elsewhere.

// IsDue reports whether an entry is due for review at the given time.
// An entry that has never been scheduled (nil NextReviewAt) is always due.
func IsDue(e domain.Entry, now time.Time) bool {
	return e.NextReviewAt == nil || !e.NextReviewAt.After(now)
}

// ApplyAnswer computes the entry state after one review answer. A correct
// answer promotes the entry one box (saturating at domain.MaxBoxLevel) and
// schedules the next review from the interval table; a wrong answer resets
// the entry to box 0 and makes it immediately due again — for the next
// session, not the current one. The input entry is not mutated.
func ApplyAnswer(e domain.Entry, correct bool, now time.Time) domain.Entry {
	now = now.UTC()

	if correct {
		if e.BoxLevel < domain.MaxBoxLevel {
			e.BoxLevel++
		}
	} else {
		e.BoxLevel = 0
	}

	reviewed := now
	next := now.Add(domain.ReviewInterval(e.BoxLevel))
	e.LastReviewedAt = &reviewed
	e.NextReviewAt = &next
	return e
}

// DueEntries filters entries down to those due at now and shuffles them
// with the provided random source, so each session sees a fresh order and
// no card gains positional bias. A nil rng gets a time-seeded source;
// tests pass a seeded one for deterministic order.
func DueEntries(entries []domain.Entry, now time.Time, rng *rand.Rand) []domain.Entry {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	due := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if IsDue(e, now) {
			due = append(due, e)
		}
	}

	rng.Shuffle(len(due), func(i, j int) {
		due[i], due[j] = due[j], due[i]
	})
	return due
}
