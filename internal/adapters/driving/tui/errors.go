package tui

import "errors"

// ErrMissingCaptureService is returned when the capture service is not provided.
var ErrMissingCaptureService = errors.New("tui: capture service is required")

// ErrMissingReviewService is returned when the review service is not provided.
var ErrMissingReviewService = errors.New("tui: review service is required")

// ErrMissingVocabularyService is returned when the vocabulary service is not provided.
var ErrMissingVocabularyService = errors.New("tui: vocabulary service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")
