package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/est22/snatch/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// vocabulary store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.snatch/data/vocabulary.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".snatch", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "vocabulary.db")

	// WAL mode keeps reads open while a review session writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// EntryStore returns an EntryStore interface backed by this store.
func (s *Store) EntryStore() driven.EntryStore {
	return &entryStore{store: s}
}

// PairStore returns a PairStore interface backed by this store.
func (s *Store) PairStore() driven.PairStore {
	return &pairStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Entry Store ====================

// entryStore implements driven.EntryStore.
type entryStore struct {
	store *Store
}

var _ driven.EntryStore = (*entryStore)(nil)

// Save stores or updates an entry.
func (s *entryStore) Save(ctx context.Context, entry domain.Entry) error {
	if entry.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO entries
			(id, word, lang_code, example_sentence, source_text, category,
			 box_level, last_reviewed_at, next_review_at, created_at, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			word = excluded.word,
			lang_code = excluded.lang_code,
			example_sentence = excluded.example_sentence,
			source_text = excluded.source_text,
			category = excluded.category,
			box_level = excluded.box_level,
			last_reviewed_at = excluded.last_reviewed_at,
			next_review_at = excluded.next_review_at,
			is_favorite = excluded.is_favorite
	`, entry.ID, entry.Word, string(entry.LangCode), entry.ExampleSentence,
		entry.SourceText, string(entry.Category), entry.BoxLevel,
		nullTime(entry.LastReviewedAt), nullTime(entry.NextReviewAt),
		entry.CreatedAt, entry.IsFavorite)

	if err != nil {
		return fmt.Errorf("saving entry: %w", err)
	}
	return nil
}

// Get retrieves an entry by ID.
func (s *entryStore) Get(ctx context.Context, id string) (*domain.Entry, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, word, lang_code, example_sentence, source_text, category,
		       box_level, last_reviewed_at, next_review_at, created_at, is_favorite
		FROM entries WHERE id = ?
	`, id)

	entry, err := scanEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning entry: %w", err)
	}
	return entry, nil
}

// Delete removes an entry.
func (s *entryStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	return nil
}

// List returns entries matching the filter, newest first.
func (s *entryStore) List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	query := `
		SELECT id, word, lang_code, example_sentence, source_text, category,
		       box_level, last_reviewed_at, next_review_at, created_at, is_favorite
		FROM entries
	`

	var conditions []string
	var args []any

	if filter.LangCode != "" {
		conditions = append(conditions, "lang_code = ?")
		args = append(args, string(filter.LangCode))
	}
	if filter.FavoritesOnly {
		conditions = append(conditions, "is_favorite = 1")
	}
	if filter.Search != "" {
		conditions = append(conditions, "(word LIKE ? OR example_sentence LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.DueBefore != nil {
		conditions = append(conditions, "(next_review_at IS NULL OR next_review_at <= ?)")
		args = append(args, filter.DueBefore.UTC())
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var result []domain.Entry //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		result = append(result, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return result, nil
}

// ==================== Pair Store ====================

// pairStore implements driven.PairStore.
type pairStore struct {
	store *Store
}

var _ driven.PairStore = (*pairStore)(nil)

// Get retrieves the stored language pair, falling back to the default pair
// when none has been saved yet.
func (s *pairStore) Get(ctx context.Context) (domain.LanguagePair, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT native, learning, updated_at FROM language_pair WHERE id = 1
	`)

	var pair domain.LanguagePair
	var native, learning string
	if err := row.Scan(&native, &learning, &pair.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultLanguagePair(), nil
		}
		return domain.LanguagePair{}, fmt.Errorf("scanning language pair: %w", err)
	}

	pair.Native = domain.LangCode(native)
	pair.Learning = domain.LangCode(learning)
	return pair, nil
}

// Set replaces the stored language pair.
func (s *pairStore) Set(ctx context.Context, pair domain.LanguagePair) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO language_pair (id, native, learning, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			native = excluded.native,
			learning = excluded.learning,
			updated_at = excluded.updated_at
	`, string(pair.Native), string(pair.Learning), pair.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving language pair: %w", err)
	}
	return nil
}

// ==================== Helper Functions ====================

// nullTime converts an optional time to its nullable SQL representation.
func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// scanEntry scans an entry row via the given scan function, so it works for
// both *sql.Row and *sql.Rows.
func scanEntry(scan func(dest ...any) error) (*domain.Entry, error) {
	var entry domain.Entry
	var langCode, category string
	var lastReviewedAt, nextReviewAt sql.NullTime

	if err := scan(&entry.ID, &entry.Word, &langCode, &entry.ExampleSentence,
		&entry.SourceText, &category, &entry.BoxLevel,
		&lastReviewedAt, &nextReviewAt, &entry.CreatedAt, &entry.IsFavorite); err != nil {
		return nil, err
	}

	entry.LangCode = domain.LangCode(langCode)
	entry.Category = domain.Category(category)
	if lastReviewedAt.Valid {
		t := lastReviewedAt.Time
		entry.LastReviewedAt = &t
	}
	if nextReviewAt.Valid {
		t := nextReviewAt.Time
		entry.NextReviewAt = &t
	}

	return &entry, nil
}
