package driven

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
)

// EntryStore persists vocabulary entries.
// Backed by SQLite for production; an in-memory variant backs tests.
type EntryStore interface {
	// Save stores or updates an entry. Review transitions go through
	// Save as a single logical read-modify-write; a failed Save must
	// leave the stored entry untouched.
	Save(ctx context.Context, entry domain.Entry) error

	// Get retrieves an entry by ID.
	// Returns domain.ErrNotFound when it does not exist.
	Get(ctx context.Context, id string) (*domain.Entry, error)

	// Delete removes an entry.
	Delete(ctx context.Context, id string) error

	// List returns entries matching the filter, newest first.
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
}
