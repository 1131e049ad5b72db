package driven

import "github.com/est22/snatch/internal/core/domain"

// LanguageIdentifier guesses the dominant language of a text span.
// Implementations must be deterministic for identical input within a
// process run, run fully offline, and distinguish at least Latin, CJK,
// Cyrillic and Arabic scripts. Empty, whitespace-only or ambiguous input
// yields domain.LangUndetermined.
type LanguageIdentifier interface {
	Identify(text string) domain.LangCode
}
