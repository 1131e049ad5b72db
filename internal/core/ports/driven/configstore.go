package driven

import "context"

// ConfigStore provides persistent app-level configuration as key-value
// pairs with dot-notation keys (e.g. "identifier.languages"). It holds
// tool settings such as the data directory and identifier language set;
// the vocabulary language pair lives in the PairStore next to the entries
// it governs.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice configuration value.
	GetStringSlice(key string) []string

	// Set stores a configuration value and persists it.
	Set(key string, value any) error

	// Load re-reads configuration from the backing file.
	Load() error

	// Watch invokes onChange whenever the backing file is modified
	// externally, until the context is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
