package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
	"github.com/est22/snatch/internal/core/ports/driving"
	"github.com/est22/snatch/internal/logger"
)

// Ensure ReviewService implements the interface.
var _ driving.ReviewService = (*ReviewService)(nil)

// ReviewService runs Leitner sessions against the entry store. Each
// transition is one read-modify-write per entry; the session is advanced
// only after the write succeeds.
type ReviewService struct {
	entries driven.EntryStore

	// rng orders each session's queue. Injectable so tests can assert a
	// deterministic shuffle under a fixed seed.
	rng *rand.Rand

	// clock is injectable for tests.
	clock func() time.Time
}

// NewReviewService creates a review service. A nil rng gets a time-seeded
// source.
func NewReviewService(entries driven.EntryStore, rng *rand.Rand) *ReviewService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ReviewService{
		entries: entries,
		rng:     rng,
		clock:   time.Now,
	}
}

// StartSession selects all due entries, shuffles them and returns a fresh
// session. Returns domain.ErrNoCards when nothing is due.
func (s *ReviewService) StartSession(ctx context.Context) (*domain.ReviewSession, error) {
	now := s.clock()

	list, err := s.entries.List(ctx, domain.EntryFilter{DueBefore: &now})
	if err != nil {
		return nil, fmt.Errorf("listing due entries: %w", err)
	}

	queue := DueEntries(list, now, s.rng)
	if len(queue) == 0 {
		return nil, domain.ErrNoCards
	}

	logger.Info("review: session started with %d card(s)", len(queue))
	return &domain.ReviewSession{Queue: queue, StartedAt: now}, nil
}

// SubmitAnswer applies the answer to the current card, persists the
// transition and advances the session. A failed write leaves the session
// position and tallies untouched so the answer can be retried.
func (s *ReviewService) SubmitAnswer(
	ctx context.Context,
	session *domain.ReviewSession,
	correct bool,
) error {
	current, ok := session.Current()
	if !ok {
		return domain.ErrSessionFinished
	}

	updated := ApplyAnswer(current, correct, s.clock())
	if err := s.entries.Save(ctx, updated); err != nil {
		return fmt.Errorf("saving review transition for %q: %w", current.Word, err)
	}

	session.Queue[session.Position] = updated
	if correct {
		session.CorrectCount++
	} else {
		session.WrongCount++
	}
	session.Position++

	logger.Debug("review: %q answered correct=%t, box now %d", updated.Word, correct, updated.BoxLevel)
	return nil
}

// DueCount reports how many entries are currently due for review.
func (s *ReviewService) DueCount(ctx context.Context) (int, error) {
	now := s.clock()
	list, err := s.entries.List(ctx, domain.EntryFilter{DueBefore: &now})
	if err != nil {
		return 0, fmt.Errorf("listing due entries: %w", err)
	}
	return len(list), nil
}
