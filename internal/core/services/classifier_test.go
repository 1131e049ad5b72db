package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/est22/snatch/internal/core/domain"
)

func newTestClassifier(identify identifierFunc) *Classifier {
	return NewClassifier(NewSegmenter(identify))
}

func TestClassifyLearningAndNative(t *testing.T) {
	c := newTestClassifier(scriptIdentifier())
	pair := domain.LanguagePair{Native: "ko", Learning: "en"}

	got := c.Classify("Hello world. 안녕하세요.", pair)

	require.Len(t, got, 2)

	assert.Equal(t, "Hello world.", got[0].Text)
	assert.Equal(t, domain.LangCode("en"), got[0].LangCode)
	assert.True(t, got[0].IsLearningLanguage)
	assert.Equal(t, "Hello world. 안녕하세요.", got[0].FullSourceText)

	assert.Equal(t, "안녕하세요.", got[1].Text)
	assert.Equal(t, domain.LangCode("ko"), got[1].LangCode)
	assert.False(t, got[1].IsLearningLanguage)
}

func TestClassifyDropsThirdLanguage(t *testing.T) {
	// Tag anything containing "Bonjour" as French, otherwise by script.
	identify := identifierFunc(func(text string) domain.LangCode {
		if text == "Bonjour le monde." {
			return "fr"
		}
		return scriptIdentifier()(text)
	})
	c := newTestClassifier(identify)
	pair := domain.LanguagePair{Native: "ko", Learning: "en"}

	got := c.Classify("Hello world. Bonjour le monde. 안녕하세요.", pair)

	require.Len(t, got, 2)
	assert.Equal(t, "Hello world.", got[0].Text)
	assert.Equal(t, "안녕하세요.", got[1].Text)
	for _, cand := range got {
		assert.NotEqual(t, domain.LangCode("fr"), cand.LangCode)
	}
}

func TestClassifyOutputOnlyContainsPairLanguages(t *testing.T) {
	c := newTestClassifier(scriptIdentifier())
	pair := domain.LanguagePair{Native: "ko", Learning: "en"}

	input := "Привет мир. Hello there. 안녕하세요. こんにちは。"
	got := c.Classify(input, pair)

	require.NotEmpty(t, got)
	for _, cand := range got {
		matches := cand.LangCode == pair.Native || cand.LangCode == pair.Learning
		assert.True(t, matches, "candidate %q has language %q outside pair", cand.Text, cand.LangCode)
	}
}

func TestClassifyNormalizesPairCodes(t *testing.T) {
	c := newTestClassifier(scriptIdentifier())

	// Region suffixes on the configured pair are truncated before
	// comparison.
	got := c.Classify("Hello world.", domain.LanguagePair{Native: "ko-KR", Learning: "en-US"})

	require.Len(t, got, 1)
	assert.True(t, got[0].IsLearningLanguage)
}

func TestClassifySamePairBothCodes(t *testing.T) {
	c := newTestClassifier(scriptIdentifier())

	// When native == learning both checks match; the learning check is
	// computed independently, so the flag is set.
	got := c.Classify("Hello world.", domain.LanguagePair{Native: "en", Learning: "en"})

	require.Len(t, got, 1)
	assert.True(t, got[0].IsLearningLanguage)
}

func TestClassifyDropsUndetermined(t *testing.T) {
	c := newTestClassifier(identifierFunc(func(string) domain.LangCode {
		return domain.LangUndetermined
	}))

	got := c.Classify("anything at all.", domain.LanguagePair{Native: "ko", Learning: "en"})

	assert.Empty(t, got)
}

func TestClassifyStableOrderNoDedup(t *testing.T) {
	c := newTestClassifier(scriptIdentifier())
	pair := domain.LanguagePair{Native: "ko", Learning: "en"}

	got := c.Classify("Same thing. Same thing.", pair)

	require.Len(t, got, 2)
	assert.Equal(t, got[0].Text, got[1].Text)
}

func TestClassifyEmptyInput(t *testing.T) {
	c := newTestClassifier(scriptIdentifier())

	assert.Empty(t, c.Classify("", domain.DefaultLanguagePair()))
}
