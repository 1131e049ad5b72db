// Package domain contains the core data types for snatch: vocabulary
// entries, language codes, capture candidates and review scheduling state.
// It has no dependencies on adapters or external services.
package domain
