// Package tui provides an interactive terminal user interface for snatch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/est22/snatch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Capture runs the clipboard/OCR capture pipeline.
	Capture driving.CaptureService

	// Review runs Leitner review sessions.
	Review driving.ReviewService

	// Vocabulary manages stored entries.
	Vocabulary driving.VocabularyService

	// Settings manages the language pair.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	capture driving.CaptureService,
	review driving.ReviewService,
	vocabulary driving.VocabularyService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Capture:    capture,
		Review:     review,
		Vocabulary: vocabulary,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Capture == nil {
		return ErrMissingCaptureService
	}
	if p.Review == nil {
		return ErrMissingReviewService
	}
	if p.Vocabulary == nil {
		return ErrMissingVocabularyService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
