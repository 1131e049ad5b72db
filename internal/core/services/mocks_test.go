package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
)

// --- Mock implementations shared across service tests ---

// mockEntryStore implements driven.EntryStore for testing.
type mockEntryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry
	saveErr error
	listErr error
}

var _ driven.EntryStore = (*mockEntryStore)(nil)

func newMockEntryStore() *mockEntryStore {
	return &mockEntryStore{entries: make(map[string]domain.Entry)}
}

func (m *mockEntryStore) Save(_ context.Context, entry domain.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockEntryStore) Get(_ context.Context, id string) (*domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

func (m *mockEntryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *mockEntryStore) List(_ context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.listErr != nil {
		return nil, m.listErr
	}

	var result []domain.Entry
	for _, e := range m.entries {
		if filter.LangCode != "" && e.LangCode != filter.LangCode {
			continue
		}
		if filter.FavoritesOnly && !e.IsFavorite {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(e.Word), needle) &&
				!strings.Contains(strings.ToLower(e.ExampleSentence), needle) {
				continue
			}
		}
		if filter.DueBefore != nil && e.NextReviewAt != nil && e.NextReviewAt.After(*filter.DueBefore) {
			continue
		}
		result = append(result, e)
	}

	// Match the sqlite store's ordering (created_at DESC, id) so List is
	// deterministic even when timestamps tie.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// mockPairStore implements driven.PairStore for testing.
type mockPairStore struct {
	mu     sync.RWMutex
	pair   *domain.LanguagePair
	getErr error
	setErr error
}

var _ driven.PairStore = (*mockPairStore)(nil)

func (m *mockPairStore) Get(_ context.Context) (domain.LanguagePair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return domain.LanguagePair{}, m.getErr
	}
	if m.pair == nil {
		return domain.DefaultLanguagePair(), nil
	}
	return *m.pair, nil
}

func (m *mockPairStore) Set(_ context.Context, pair domain.LanguagePair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.pair = &pair
	return nil
}

// mockClipboard implements driven.ClipboardReader for testing.
type mockClipboard struct {
	content domain.ClipboardContent
	err     error
}

var _ driven.ClipboardReader = (*mockClipboard)(nil)

func (m *mockClipboard) Read() (domain.ClipboardContent, error) {
	return m.content, m.err
}

// mockExtractor implements driven.TextExtractor for testing.
type mockExtractor struct {
	text string
	err  error
}

var _ driven.TextExtractor = (*mockExtractor)(nil)

func (m *mockExtractor) ExtractText(ctx context.Context, _ []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.text, m.err
}
