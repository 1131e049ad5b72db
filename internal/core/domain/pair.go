package domain

import "time"

// Default language pair used when no configuration has been saved.
const (
	DefaultNativeCode   LangCode = "ko"
	DefaultLearningCode LangCode = "en"
)

// LanguagePair is the user's native/learning language configuration.
// At most one pair is active; when none is stored the defaults apply.
// The pair is always passed explicitly into classification calls.
type LanguagePair struct {
	// Native is the user's native language code.
	Native LangCode

	// Learning is the language the user is studying.
	Learning LangCode

	// UpdatedAt is when the pair was last changed.
	UpdatedAt time.Time
}

// DefaultLanguagePair returns the fallback pair (native "ko", learning "en").
func DefaultLanguagePair() LanguagePair {
	return LanguagePair{
		Native:   DefaultNativeCode,
		Learning: DefaultLearningCode,
	}
}

// Normalized returns a copy with both codes reduced to their primary
// 2-letter subtags.
func (p LanguagePair) Normalized() LanguagePair {
	p.Native = NormalizeLangCode(string(p.Native))
	p.Learning = NormalizeLangCode(string(p.Learning))
	return p
}
