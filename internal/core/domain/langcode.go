package domain

import (
	"strings"
	"unicode"
)

// LangCode is a normalized language code: the primary 2-letter ISO 639-1
// subtag (e.g. "en", "ko") or the sentinel LangUndetermined.
type LangCode string

// LangUndetermined is returned when a text span cannot be classified.
const LangUndetermined LangCode = "und"

// NormalizeLangCode reduces a language tag to its primary 2-letter subtag.
// Region and script subtags are dropped ("en-US" -> "en", "ko_KR" -> "ko").
// Tags that do not start with a 2-letter primary subtag normalize to
// LangUndetermined. The function is idempotent.
func NormalizeLangCode(code string) LangCode {
	code = strings.TrimSpace(strings.ToLower(code))
	if code == "" || code == string(LangUndetermined) {
		return LangUndetermined
	}

	if i := strings.IndexAny(code, "-_"); i >= 0 {
		code = code[:i]
	}

	if len(code) != 2 {
		return LangUndetermined
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return LangUndetermined
		}
	}

	return LangCode(code)
}

// IsUndetermined reports whether the code is the undetermined sentinel.
func (c LangCode) IsUndetermined() bool {
	return c == LangUndetermined
}

// String returns the code as a plain string.
func (c LangCode) String() string {
	return string(c)
}
