// Package mcp provides an MCP (Model Context Protocol) server adapter for
// snatch. It lets local AI assistants capture vocabulary and inspect the
// review queue over stdio.
package mcp

import "errors"

// ErrMissingCaptureService is returned when the capture service is not provided.
var ErrMissingCaptureService = errors.New("mcp: capture service is required")

// ErrMissingVocabularyService is returned when the vocabulary service is not provided.
var ErrMissingVocabularyService = errors.New("mcp: vocabulary service is required")
