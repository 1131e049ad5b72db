package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
)

// Ensure EntryStore implements the interface.
var _ driven.EntryStore = (*EntryStore)(nil)

// EntryStore is an in-memory implementation of driven.EntryStore.
type EntryStore struct {
	mu      sync.RWMutex
	entries map[string]domain.Entry
}

// NewEntryStore creates a new in-memory entry store.
func NewEntryStore() *EntryStore {
	return &EntryStore{
		entries: make(map[string]domain.Entry),
	}
}

// Save stores or updates an entry.
func (s *EntryStore) Save(_ context.Context, entry domain.Entry) error {
	if entry.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = entry
	return nil
}

// Get retrieves an entry by ID.
func (s *EntryStore) Get(_ context.Context, id string) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// Delete removes an entry.
func (s *EntryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// List returns entries matching the filter, newest first.
func (s *EntryStore) List(_ context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Entry, 0, len(s.entries))
	for _, entry := range s.entries {
		if matches(entry, filter) {
			result = append(result, entry)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// matches reports whether an entry passes every set filter field.
func matches(entry domain.Entry, filter domain.EntryFilter) bool {
	if filter.LangCode != "" && entry.LangCode != filter.LangCode {
		return false
	}
	if filter.FavoritesOnly && !entry.IsFavorite {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(entry.Word), needle) &&
			!strings.Contains(strings.ToLower(entry.ExampleSentence), needle) {
			return false
		}
	}
	if filter.DueBefore != nil {
		if entry.NextReviewAt != nil && entry.NextReviewAt.After(*filter.DueBefore) {
			return false
		}
	}
	return true
}
