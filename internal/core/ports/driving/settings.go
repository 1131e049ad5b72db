package driving

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
)

// SettingsService manages the language pair configuration.
type SettingsService interface {
	// LanguagePair returns the active pair, falling back to defaults
	// when nothing has been configured.
	LanguagePair(ctx context.Context) (domain.LanguagePair, error)

	// SetLanguagePair normalizes and stores a new pair.
	// Codes that do not normalize to 2 letters are rejected with
	// domain.ErrInvalidInput.
	SetLanguagePair(ctx context.Context, native, learning string) (domain.LanguagePair, error)
}
