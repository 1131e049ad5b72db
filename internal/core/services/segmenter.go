package services

import (
	"strings"
	"unicode"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
)

// Segmenter splits input text into ordered, non-overlapping spans at
// sentence-like boundaries and tags each span with its dominant language.
// Segmentation is sentence-level on purpose: a mixed-language sentence gets
// a single dominant tag rather than per-word tags.
type Segmenter struct {
	identifier driven.LanguageIdentifier
}

// NewSegmenter creates a segmenter backed by the given identifier.
func NewSegmenter(identifier driven.LanguageIdentifier) *Segmenter {
	return &Segmenter{identifier: identifier}
}

// Segment splits text into language-tagged spans. Spans are trimmed, empty
// spans are dropped, and the returned slice preserves the original
// left-to-right order. The result is fully materialized; callers may index
// and count it freely.
func (s *Segmenter) Segment(text string) []domain.Segment {
	spans := splitSentences(text)

	// Inputs with no sentence punctuation at all (single words, pasted
	// fragments) fall back to script-run boundaries so that e.g. a Latin
	// fragment glued to a Hangul fragment still yields two spans.
	if !containsTerminator(text) {
		var expanded []string
		for _, span := range spans {
			expanded = append(expanded, splitScriptRuns(span)...)
		}
		spans = expanded
	}

	segments := make([]domain.Segment, 0, len(spans))
	for _, span := range spans {
		span = strings.TrimSpace(span)
		if span == "" {
			continue
		}
		segments = append(segments, domain.Segment{
			Text:     span,
			LangCode: s.identifier.Identify(span),
		})
	}
	return segments
}

// Sentence terminators across the supported scripts. The ASCII ones only
// terminate when followed by whitespace or end of input, so "3.5" or
// "e.g." mid-token do not split.
func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？', '…':
		return true
	}
	return false
}

// Fullwidth terminators end a sentence regardless of what follows.
func isFullwidthTerminator(r rune) bool {
	switch r {
	case '。', '！', '？':
		return true
	}
	return false
}

func containsTerminator(text string) bool {
	return strings.ContainsFunc(text, isTerminator)
}

// splitSentences cuts text after terminal punctuation followed by
// whitespace (or end of input) and at every newline. Trailing closing
// quotes and brackets stay attached to the sentence they close.
func splitSentences(text string) []string {
	var (
		spans   []string
		current strings.Builder
	)
	runes := []rune(text)

	flush := func() {
		if current.Len() > 0 {
			spans = append(spans, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			flush()
			continue
		}

		current.WriteRune(r)

		if !isTerminator(r) {
			continue
		}

		// Absorb closing quotes/brackets after the terminator.
		for i+1 < len(runes) && isClosing(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}

		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		if isFullwidthTerminator(r) || next == 0 || unicode.IsSpace(next) {
			flush()
		}
	}
	flush()

	return spans
}

func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '」', '』', '”', '’':
		return true
	}
	return false
}

// scriptClass buckets runes into the script runs the segmenter splits on.
type scriptClass int

const (
	scriptNeutral scriptClass = iota
	scriptLatin
	scriptHangul
	scriptCJK // Han and kana share a class: Japanese mixes them freely
	scriptCyrillic
	scriptArabic
)

func classOf(r rune) scriptClass {
	switch {
	case unicode.Is(unicode.Hangul, r):
		return scriptHangul
	case unicode.Is(unicode.Han, r), unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
		return scriptCJK
	case unicode.Is(unicode.Cyrillic, r):
		return scriptCyrillic
	case unicode.Is(unicode.Arabic, r):
		return scriptArabic
	case unicode.IsLetter(r):
		return scriptLatin
	default:
		return scriptNeutral
	}
}

// splitScriptRuns splits a span wherever the script class changes between
// letters. Neutral runes (digits, punctuation, whitespace) stay with the
// run they follow.
func splitScriptRuns(span string) []string {
	var (
		runs    []string
		current strings.Builder
		prev    = scriptNeutral
	)

	for _, r := range span {
		class := classOf(r)
		if class != scriptNeutral && prev != scriptNeutral && class != prev {
			runs = append(runs, current.String())
			current.Reset()
		}
		if class != scriptNeutral {
			prev = class
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		runs = append(runs, current.String())
	}
	return runs
}
