package memory

import (
	"context"
	"sync"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
)

// Ensure PairStore implements the interface.
var _ driven.PairStore = (*PairStore)(nil)

// PairStore is an in-memory implementation of driven.PairStore.
type PairStore struct {
	mu   sync.RWMutex
	pair *domain.LanguagePair
}

// NewPairStore creates a new in-memory pair store.
func NewPairStore() *PairStore {
	return &PairStore{}
}

// Get returns the stored pair, or the default pair when none was set.
func (s *PairStore) Get(_ context.Context) (domain.LanguagePair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.pair == nil {
		return domain.DefaultLanguagePair(), nil
	}
	return *s.pair, nil
}

// Set replaces the stored pair.
func (s *PairStore) Set(_ context.Context, pair domain.LanguagePair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = &pair
	return nil
}
