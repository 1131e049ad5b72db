package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/est22/snatch/internal/core/domain"
)

func TestVocabularyListFilters(t *testing.T) {
	store := newMockEntryStore()

	korean := domain.NewEntry(domain.WordCandidate{Text: "사과", LangCode: "ko", IsLearningLanguage: true}, reviewTime)
	english := domain.NewEntry(domain.WordCandidate{Text: "apple", LangCode: "en"}, reviewTime)
	english.IsFavorite = true
	require.NoError(t, store.Save(context.Background(), korean))
	require.NoError(t, store.Save(context.Background(), english))

	svc := NewVocabularyService(store)

	all, err := svc.List(context.Background(), domain.EntryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyKorean, err := svc.List(context.Background(), domain.EntryFilter{LangCode: "ko"})
	require.NoError(t, err)
	require.Len(t, onlyKorean, 1)
	assert.Equal(t, "사과", onlyKorean[0].Word)

	favorites, err := svc.List(context.Background(), domain.EntryFilter{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "apple", favorites[0].Word)
}

func TestVocabularyGetValidatesID(t *testing.T) {
	svc := NewVocabularyService(newMockEntryStore())

	_, err := svc.Get(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVocabularyDelete(t *testing.T) {
	store := newMockEntryStore()
	entry := domain.NewEntry(domain.WordCandidate{Text: "flower", LangCode: "en"}, reviewTime)
	require.NoError(t, store.Save(context.Background(), entry))

	svc := NewVocabularyService(store)
	require.NoError(t, svc.Delete(context.Background(), entry.ID))

	_, err := store.Get(context.Background(), entry.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), ""), domain.ErrInvalidInput)
}

func TestVocabularyToggleFavorite(t *testing.T) {
	store := newMockEntryStore()
	entry := domain.NewEntry(domain.WordCandidate{Text: "나무", LangCode: "ko"}, reviewTime)
	require.NoError(t, store.Save(context.Background(), entry))

	svc := NewVocabularyService(store)

	on, err := svc.ToggleFavorite(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := svc.ToggleFavorite(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = svc.ToggleFavorite(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVocabularySetCategory(t *testing.T) {
	store := newMockEntryStore()
	entry := domain.NewEntry(domain.WordCandidate{Text: "run", LangCode: "en"}, reviewTime)
	require.NoError(t, store.Save(context.Background(), entry))

	svc := NewVocabularyService(store)

	require.NoError(t, svc.SetCategory(context.Background(), entry.ID, domain.CategoryVerb))

	stored, err := store.Get(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryVerb, stored.Category)

	require.ErrorIs(t,
		svc.SetCategory(context.Background(), entry.ID, domain.Category("  ")),
		domain.ErrInvalidInput)
}

func TestVocabularySetCategorySaveFailure(t *testing.T) {
	store := newMockEntryStore()
	entry := domain.NewEntry(domain.WordCandidate{Text: "walk", LangCode: "en"}, reviewTime)
	require.NoError(t, store.Save(context.Background(), entry))

	svc := NewVocabularyService(store)
	store.saveErr = errors.New("disk full")

	err := svc.SetCategory(context.Background(), entry.ID, domain.CategoryNoun)
	require.Error(t, err)

	store.saveErr = nil
	stored, err := store.Get(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryNative, stored.Category)
}
