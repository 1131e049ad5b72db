package driven

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
)

// PairStore persists the single active language pair configuration.
type PairStore interface {
	// Get returns the stored pair, or domain.DefaultLanguagePair() when
	// none has been saved yet. Absence is not an error.
	Get(ctx context.Context) (domain.LanguagePair, error)

	// Set replaces the stored pair.
	Set(ctx context.Context, pair domain.LanguagePair) error
}
