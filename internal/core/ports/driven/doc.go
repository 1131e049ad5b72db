// Package driven defines the outbound port interfaces the core depends on:
// persistence, language identification, text extraction and clipboard
// access. Adapters under internal/adapters/driven implement these.
package driven
