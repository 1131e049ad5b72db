package services

import (
	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/logger"
)

// Classifier turns segmented spans into capture candidates filtered by the
// user's language pair. Classification is pure and never fails: spans in a
// third language are dropped silently, not reported as errors.
type Classifier struct {
	segmenter *Segmenter
}

// NewClassifier creates a classifier over the given segmenter.
func NewClassifier(segmenter *Segmenter) *Classifier {
	return &Classifier{segmenter: segmenter}
}

// Classify segments text and emits one candidate per span whose normalized
// language matches the pair's native or learning code. Candidate order
// follows span order in the source text; there is no deduplication. Both
// match checks are evaluated independently, so when native and learning are
// the same code a matching span is still flagged by the learning check.
func (c *Classifier) Classify(text string, pair domain.LanguagePair) []domain.WordCandidate {
	pair = pair.Normalized()
	segments := c.segmenter.Segment(text)

	candidates := make([]domain.WordCandidate, 0, len(segments))
	for _, seg := range segments {
		lang := domain.NormalizeLangCode(string(seg.LangCode))
		if lang.IsUndetermined() {
			logger.Debug("classifier: dropping undetermined span %q", seg.Text)
			continue
		}

		matchesLearning := lang == pair.Learning
		matchesNative := lang == pair.Native
		if !matchesLearning && !matchesNative {
			logger.Debug("classifier: dropping %q span %q outside pair (%s, %s)",
				lang, seg.Text, pair.Native, pair.Learning)
			continue
		}

		candidates = append(candidates, domain.WordCandidate{
			Text:               seg.Text,
			LangCode:           lang,
			IsLearningLanguage: matchesLearning,
			FullSourceText:     text,
		})
	}
	return candidates
}
