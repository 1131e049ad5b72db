package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLangCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want LangCode
	}{
		{name: "plain two letter", in: "en", want: "en"},
		{name: "uppercase", in: "EN", want: "en"},
		{name: "region suffix", in: "en-US", want: "en"},
		{name: "script suffix", in: "zh-Hant", want: "zh"},
		{name: "underscore region", in: "ko_KR", want: "ko"},
		{name: "surrounding whitespace", in: "  ja  ", want: "ja"},
		{name: "empty", in: "", want: LangUndetermined},
		{name: "whitespace only", in: "   ", want: LangUndetermined},
		{name: "undetermined sentinel", in: "und", want: LangUndetermined},
		{name: "three letter primary", in: "eng", want: LangUndetermined},
		{name: "single letter", in: "e", want: LangUndetermined},
		{name: "digits", in: "12", want: LangUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLangCode(tt.in))
		})
	}
}

func TestNormalizeLangCodeIdempotent(t *testing.T) {
	inputs := []string{"en", "en-US", "zh-Hant", "ko_KR", "und", "", "eng", "FR"}

	for _, in := range inputs {
		once := NormalizeLangCode(in)
		twice := NormalizeLangCode(string(once))
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", in)
	}
}

func TestLangCodeIsUndetermined(t *testing.T) {
	assert.True(t, LangUndetermined.IsUndetermined())
	assert.False(t, LangCode("en").IsUndetermined())
}
