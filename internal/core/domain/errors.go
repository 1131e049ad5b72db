package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrEmptyClipboard indicates the clipboard held neither text nor an
	// image. The pipeline does not run for that capture.
	ErrEmptyClipboard = errors.New("clipboard empty")

	// ErrExtractionFailed indicates the text extractor could not read any
	// text from the image. The capture aborts and state resets to idle.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrExtractorUnavailable indicates no OCR engine is compiled in or
	// configured. Image captures are disabled.
	ErrExtractorUnavailable = errors.New("text extractor unavailable")

	// ErrStoreUnavailable indicates the vocabulary store could not be
	// reached. Writes are retryable; a failed write is never treated as
	// applied.
	ErrStoreUnavailable = errors.New("vocabulary store unavailable")

	// ErrSessionFinished indicates an answer was submitted after every
	// card in the review session had been answered.
	ErrSessionFinished = errors.New("review session finished")

	// ErrNoCards indicates due-selection produced no entries to review.
	ErrNoCards = errors.New("no cards due for review")
)
