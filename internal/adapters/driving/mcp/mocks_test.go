package mcp

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
)

// mockCaptureService is a mock implementation of driving.CaptureService.
type mockCaptureService struct {
	candidates []domain.WordCandidate
	entries    []domain.Entry
	err        error
	acceptErr  error
	resetCount int
	lastText   string
}

func (m *mockCaptureService) State() domain.PipelineState {
	return domain.StateIdle
}

func (m *mockCaptureService) ClassifyText(_ context.Context, text string) ([]domain.WordCandidate, error) {
	m.lastText = text
	return m.candidates, m.err
}

func (m *mockCaptureService) CaptureClipboard(_ context.Context) ([]domain.WordCandidate, error) {
	return m.candidates, m.err
}

func (m *mockCaptureService) CaptureImage(_ context.Context, _ []byte) ([]domain.WordCandidate, error) {
	return m.candidates, m.err
}

func (m *mockCaptureService) AcceptCandidates(
	_ context.Context,
	candidates []domain.WordCandidate,
) ([]domain.Entry, error) {
	if m.acceptErr != nil {
		return nil, m.acceptErr
	}
	if m.entries != nil {
		return m.entries, nil
	}
	entries := make([]domain.Entry, len(candidates))
	for i, c := range candidates {
		entries[i] = domain.Entry{ID: c.Text, Word: c.Text, LangCode: c.LangCode}
	}
	return entries, nil
}

func (m *mockCaptureService) Reset() {
	m.resetCount++
}

// mockVocabularyService is a mock implementation of driving.VocabularyService.
type mockVocabularyService struct {
	entries    []domain.Entry
	err        error
	lastFilter domain.EntryFilter
}

func (m *mockVocabularyService) List(
	_ context.Context,
	filter domain.EntryFilter,
) ([]domain.Entry, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}

	var result []domain.Entry
	for _, e := range m.entries {
		if filter.LangCode != "" && e.LangCode != filter.LangCode {
			continue
		}
		if filter.FavoritesOnly && !e.IsFavorite {
			continue
		}
		if filter.DueBefore != nil && e.NextReviewAt != nil && e.NextReviewAt.After(*filter.DueBefore) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (m *mockVocabularyService) Get(_ context.Context, id string) (*domain.Entry, error) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			return &m.entries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockVocabularyService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockVocabularyService) ToggleFavorite(_ context.Context, _ string) (bool, error) {
	return false, m.err
}

func (m *mockVocabularyService) SetCategory(_ context.Context, _ string, _ domain.Category) error {
	return m.err
}
