package capture

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/est22/snatch/internal/adapters/driving/tui/messages"
	"github.com/est22/snatch/internal/core/domain"
)

type mockCaptureService struct {
	classifyFunc func(ctx context.Context, text string) ([]domain.WordCandidate, error)
	acceptFunc   func(ctx context.Context, candidates []domain.WordCandidate) ([]domain.Entry, error)
	resetCount   int
}

func (m *mockCaptureService) State() domain.PipelineState { return domain.StateIdle }

func (m *mockCaptureService) ClassifyText(ctx context.Context, text string) ([]domain.WordCandidate, error) {
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, text)
	}
	return nil, nil
}

func (m *mockCaptureService) CaptureClipboard(_ context.Context) ([]domain.WordCandidate, error) {
	return nil, nil
}

func (m *mockCaptureService) CaptureImage(_ context.Context, _ []byte) ([]domain.WordCandidate, error) {
	return nil, nil
}

func (m *mockCaptureService) AcceptCandidates(ctx context.Context, candidates []domain.WordCandidate) ([]domain.Entry, error) {
	if m.acceptFunc != nil {
		return m.acceptFunc(ctx, candidates)
	}
	return nil, nil
}

func (m *mockCaptureService) Reset() { m.resetCount++ }

func testCandidates() []domain.WordCandidate {
	return []domain.WordCandidate{
		{Text: "hello", LangCode: "en", IsLearningLanguage: true},
		{Text: "안녕", LangCode: "ko", IsLearningLanguage: false},
	}
}

func classified(v *View) *View {
	v.SetDimensions(80, 24)
	v, _ = v.Update(messages.CandidatesClassified{Candidates: testCandidates()})
	return v
}

func TestView_ClassifyEnteredText(t *testing.T) {
	var got string
	svc := &mockCaptureService{
		classifyFunc: func(_ context.Context, text string) ([]domain.WordCandidate, error) {
			got = text
			return testCandidates(), nil
		},
	}
	v := NewView(nil, svc)
	v.SetDimensions(80, 24)
	v.input.SetValue("hello 안녕")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "hello 안녕", got)

	result, ok := msg.(messages.CandidatesClassified)
	require.True(t, ok)
	assert.Len(t, result.Candidates, 2)
}

func TestView_ClassifyEmptyTextIsNoop(t *testing.T) {
	v := NewView(nil, &mockCaptureService{})
	v.SetDimensions(80, 24)
	v.input.SetValue("   ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Equal(t, StageInput, v.Stage())
}

func TestView_CandidatesPreselectLearning(t *testing.T) {
	v := classified(NewView(nil, &mockCaptureService{}))

	assert.Equal(t, StageCandidates, v.Stage())
	assert.True(t, v.Checked(0), "learning-language word should be preselected")
	assert.False(t, v.Checked(1), "native-language word should not be preselected")
}

func TestView_ToggleCandidate(t *testing.T) {
	v := classified(NewView(nil, &mockCaptureService{}))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, v.Checked(0))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, v.Checked(0))
}

func TestView_SelectAll(t *testing.T) {
	v := classified(NewView(nil, &mockCaptureService{}))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	assert.True(t, v.Checked(0))
	assert.True(t, v.Checked(1))
}

func TestView_AcceptOnlyChecked(t *testing.T) {
	var accepted []domain.WordCandidate
	svc := &mockCaptureService{
		acceptFunc: func(_ context.Context, candidates []domain.WordCandidate) ([]domain.Entry, error) {
			accepted = candidates
			return []domain.Entry{{ID: "1", Word: candidates[0].Text}}, nil
		},
	}
	v := classified(NewView(nil, svc))

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg := cmd()
	require.Len(t, accepted, 1)
	assert.Equal(t, "hello", accepted[0].Text)

	result, ok := msg.(messages.CandidatesAccepted)
	require.True(t, ok)
	require.NoError(t, result.Err)
}

func TestView_AcceptNothingCheckedIsNoop(t *testing.T) {
	v := classified(NewView(nil, &mockCaptureService{}))
	// Uncheck the only preselected candidate.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeySpace})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_SavedStage(t *testing.T) {
	v := classified(NewView(nil, &mockCaptureService{}))

	v, _ = v.Update(messages.CandidatesAccepted{
		Entries: []domain.Entry{{ID: "1", Word: "hello"}},
	})

	assert.Equal(t, StageSaved, v.Stage())
	assert.Contains(t, v.View(), "Saved 1 entries")
}

func TestView_EscFromCandidatesResetsPipeline(t *testing.T) {
	svc := &mockCaptureService{}
	v := classified(NewView(nil, svc))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, StageInput, v.Stage())
	assert.Equal(t, 1, svc.resetCount)
}

func TestView_EscFromInputReturnsToMenu(t *testing.T) {
	v := NewView(nil, &mockCaptureService{})
	v.SetDimensions(80, 24)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_ClassifyErrorIsShown(t *testing.T) {
	v := NewView(nil, &mockCaptureService{})
	v.SetDimensions(80, 24)

	v, _ = v.Update(messages.CandidatesClassified{Err: errors.New("boom")})

	require.Error(t, v.Err())
	assert.Equal(t, StageInput, v.Stage())
	assert.Contains(t, v.View(), "boom")
}
