package driving

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
)

// VocabularyService manages stored entries outside of review sessions.
type VocabularyService interface {
	// List returns entries matching the filter, newest first.
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)

	// Get retrieves a single entry by ID.
	Get(ctx context.Context, id string) (*domain.Entry, error)

	// Delete removes an entry permanently.
	Delete(ctx context.Context, id string) error

	// ToggleFavorite flips the favorite flag and returns the new value.
	ToggleFavorite(ctx context.Context, id string) (bool, error)

	// SetCategory retags an entry.
	SetCategory(ctx context.Context, id string, category domain.Category) error
}
