package mcp

import (
	"github.com/est22/snatch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Capture runs the text classification pipeline.
	Capture driving.CaptureService

	// Vocabulary reads and manages stored entries.
	Vocabulary driving.VocabularyService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Capture == nil {
		return ErrMissingCaptureService
	}
	if p.Vocabulary == nil {
		return ErrMissingVocabularyService
	}
	return nil
}
