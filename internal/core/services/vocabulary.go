package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
	"github.com/est22/snatch/internal/core/ports/driving"
)

// Ensure VocabularyService implements the interface.
var _ driving.VocabularyService = (*VocabularyService)(nil)

// VocabularyService manages stored entries outside of review sessions.
type VocabularyService struct {
	entries driven.EntryStore
}

// NewVocabularyService creates a vocabulary service.
func NewVocabularyService(entries driven.EntryStore) *VocabularyService {
	return &VocabularyService{entries: entries}
}

// List returns entries matching the filter, newest first.
func (s *VocabularyService) List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	return s.entries.List(ctx, filter)
}

// Get retrieves a single entry by ID.
func (s *VocabularyService) Get(ctx context.Context, id string) (*domain.Entry, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.entries.Get(ctx, id)
}

// Delete removes an entry permanently.
func (s *VocabularyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.entries.Delete(ctx, id)
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (s *VocabularyService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	entry, err := s.entries.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("loading entry: %w", err)
	}

	entry.IsFavorite = !entry.IsFavorite
	if err := s.entries.Save(ctx, *entry); err != nil {
		return false, fmt.Errorf("saving favorite toggle: %w", err)
	}
	return entry.IsFavorite, nil
}

// SetCategory retags an entry. The category is free-form but must be
// non-empty.
func (s *VocabularyService) SetCategory(ctx context.Context, id string, category domain.Category) error {
	if strings.TrimSpace(string(category)) == "" {
		return domain.ErrInvalidInput
	}

	entry, err := s.entries.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading entry: %w", err)
	}

	entry.Category = category
	if err := s.entries.Save(ctx, *entry); err != nil {
		return fmt.Errorf("saving category: %w", err)
	}
	return nil
}
