// Package lingua implements the LanguageIdentifier port on top of the
// offline pemistahl/lingua-go statistical detector.
package lingua

import (
	"strings"
	"sync"
	"unicode"

	"github.com/pemistahl/lingua-go"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
	"github.com/est22/snatch/internal/logger"
)

// Ensure Identifier implements the driven port.
var _ driven.LanguageIdentifier = (*Identifier)(nil)

// supportedLanguages is the closed set the detector chooses from. Keeping
// the set small keeps model load time and memory down while covering the
// scripts the segmenter distinguishes.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Korean,
	lingua.Japanese,
	lingua.Chinese,
	lingua.Russian,
	lingua.Arabic,
	lingua.French,
	lingua.Spanish,
	lingua.German,
}

// Identifier guesses the dominant language of a text span. Detection is
// deterministic for identical input within a process run.
type Identifier struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// New creates an identifier. The underlying language models are loaded
// lazily on first use, so construction is cheap.
func New() *Identifier {
	return &Identifier{}
}

func (i *Identifier) init() {
	i.detector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(supportedLanguages...).
		WithPreloadedLanguageModels().
		Build()
	logger.Debug("lingua: detector initialised with %d languages", len(supportedLanguages))
}

// Identify returns the ISO 639-1 code of the dominant language, or
// domain.LangUndetermined when the input is empty or ambiguous.
func (i *Identifier) Identify(text string) domain.LangCode {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.LangUndetermined
	}

	// Statistical models are unreliable on very short Latin fragments, but
	// non-Latin scripts pin the language well enough on their own. Try the
	// script shortcut first so single CJK or Hangul words resolve without
	// touching the detector.
	if code, ok := scriptShortcut(text); ok {
		return code
	}

	i.once.Do(i.init)

	lang, ok := i.detector.DetectLanguageOf(text)
	if !ok {
		return domain.LangUndetermined
	}
	return domain.NormalizeLangCode(lang.IsoCode639_1().String())
}

// scriptShortcut resolves spans written entirely in a script that maps to a
// single supported language. Mixed-script and Latin spans fall through to
// the statistical detector.
func scriptShortcut(text string) (domain.LangCode, bool) {
	var hangul, kana, han, cyrillic, arabic, latin int

	for _, r := range text {
		switch {
		case unicode.Is(unicode.Hangul, r):
			hangul++
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			kana++
		case unicode.Is(unicode.Han, r):
			han++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Arabic, r):
			arabic++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}

	total := hangul + kana + han + cyrillic + arabic + latin
	if total == 0 {
		return domain.LangUndetermined, false
	}

	switch {
	case hangul == total:
		return "ko", true
	case kana > 0 && kana+han == total:
		// Kana is exclusive to Japanese; Han alone could be Chinese, so it
		// only takes the shortcut when kana appears alongside it.
		return "ja", true
	case han == total:
		return "zh", true
	case cyrillic == total:
		return "ru", true
	case arabic == total:
		return "ar", true
	}
	return domain.LangUndetermined, false
}
