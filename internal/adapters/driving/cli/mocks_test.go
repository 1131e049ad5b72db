package cli

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
)

// MockCaptureService implements driving.CaptureService for CLI tests.
type MockCaptureService struct {
	ClassifyTextFunc     func(ctx context.Context, text string) ([]domain.WordCandidate, error)
	CaptureClipboardFunc func(ctx context.Context) ([]domain.WordCandidate, error)
	CaptureImageFunc     func(ctx context.Context, image []byte) ([]domain.WordCandidate, error)
	AcceptCandidatesFunc func(ctx context.Context, candidates []domain.WordCandidate) ([]domain.Entry, error)
	ResetCount           int
}

func (m *MockCaptureService) State() domain.PipelineState { return domain.StateIdle }

func (m *MockCaptureService) ClassifyText(ctx context.Context, text string) ([]domain.WordCandidate, error) {
	if m.ClassifyTextFunc != nil {
		return m.ClassifyTextFunc(ctx, text)
	}
	return nil, nil
}

func (m *MockCaptureService) CaptureClipboard(ctx context.Context) ([]domain.WordCandidate, error) {
	if m.CaptureClipboardFunc != nil {
		return m.CaptureClipboardFunc(ctx)
	}
	return nil, nil
}

func (m *MockCaptureService) CaptureImage(ctx context.Context, image []byte) ([]domain.WordCandidate, error) {
	if m.CaptureImageFunc != nil {
		return m.CaptureImageFunc(ctx, image)
	}
	return nil, nil
}

func (m *MockCaptureService) AcceptCandidates(ctx context.Context, candidates []domain.WordCandidate) ([]domain.Entry, error) {
	if m.AcceptCandidatesFunc != nil {
		return m.AcceptCandidatesFunc(ctx, candidates)
	}
	return nil, nil
}

func (m *MockCaptureService) Reset() { m.ResetCount++ }

// MockReviewService implements driving.ReviewService for CLI tests.
type MockReviewService struct {
	StartSessionFunc func(ctx context.Context) (*domain.ReviewSession, error)
	SubmitAnswerFunc func(ctx context.Context, session *domain.ReviewSession, correct bool) error
	DueCountFunc     func(ctx context.Context) (int, error)
}

func (m *MockReviewService) StartSession(ctx context.Context) (*domain.ReviewSession, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx)
	}
	return nil, domain.ErrNoCards
}

func (m *MockReviewService) SubmitAnswer(ctx context.Context, session *domain.ReviewSession, correct bool) error {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, session, correct)
	}
	session.Position++
	return nil
}

func (m *MockReviewService) DueCount(ctx context.Context) (int, error) {
	if m.DueCountFunc != nil {
		return m.DueCountFunc(ctx)
	}
	return 0, nil
}

// MockVocabularyService implements driving.VocabularyService for CLI tests.
type MockVocabularyService struct {
	ListFunc           func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	GetFunc            func(ctx context.Context, id string) (*domain.Entry, error)
	DeleteFunc         func(ctx context.Context, id string) error
	ToggleFavoriteFunc func(ctx context.Context, id string) (bool, error)
}

func (m *MockVocabularyService) List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockVocabularyService) Get(ctx context.Context, id string) (*domain.Entry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockVocabularyService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockVocabularyService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if m.ToggleFavoriteFunc != nil {
		return m.ToggleFavoriteFunc(ctx, id)
	}
	return true, nil
}

func (m *MockVocabularyService) SetCategory(_ context.Context, _ string, _ domain.Category) error {
	return nil
}

// MockSettingsService implements driving.SettingsService for CLI tests.
type MockSettingsService struct {
	LanguagePairFunc    func(ctx context.Context) (domain.LanguagePair, error)
	SetLanguagePairFunc func(ctx context.Context, native, learning string) (domain.LanguagePair, error)
}

func (m *MockSettingsService) LanguagePair(ctx context.Context) (domain.LanguagePair, error) {
	if m.LanguagePairFunc != nil {
		return m.LanguagePairFunc(ctx)
	}
	return domain.DefaultLanguagePair(), nil
}

func (m *MockSettingsService) SetLanguagePair(ctx context.Context, native, learning string) (domain.LanguagePair, error) {
	if m.SetLanguagePairFunc != nil {
		return m.SetLanguagePairFunc(ctx, native, learning)
	}
	return domain.LanguagePair{
		Native:   domain.LangCode(native),
		Learning: domain.LangCode(learning),
	}, nil
}
