package driving

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
)

// ReviewService runs Leitner review sessions over due entries.
type ReviewService interface {
	// StartSession selects all currently due entries in randomized order.
	// Returns domain.ErrNoCards when nothing is due.
	StartSession(ctx context.Context) (*domain.ReviewSession, error)

	// SubmitAnswer applies the answer to the session's current card,
	// persists the transition and advances the session. The session is
	// not advanced when the write fails. Returns domain.ErrSessionFinished
	// when every card has already been answered.
	SubmitAnswer(ctx context.Context, session *domain.ReviewSession, correct bool) error

	// DueCount reports how many entries are currently due.
	DueCount(ctx context.Context) (int, error)
}
