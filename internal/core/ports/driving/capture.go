package driving

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
)

// CaptureService runs the capture pipeline: clipboard or pasted input,
// optional OCR extraction, segmentation and candidate classification, and
// finally persistence of accepted candidates.
type CaptureService interface {
	// State returns the current pipeline state.
	State() domain.PipelineState

	// ClassifyText segments and classifies pasted or typed text against
	// the current language pair. Third languages are dropped silently;
	// classification itself never fails.
	ClassifyText(ctx context.Context, text string) ([]domain.WordCandidate, error)

	// CaptureClipboard reads the clipboard once and classifies its
	// content, extracting text first when it holds an image. Returns
	// domain.ErrEmptyClipboard when there is nothing to capture.
	CaptureClipboard(ctx context.Context) ([]domain.WordCandidate, error)

	// CaptureImage extracts text from image bytes and classifies it.
	// The extraction is cancellable via ctx.
	CaptureImage(ctx context.Context, image []byte) ([]domain.WordCandidate, error)

	// AcceptCandidates persists the accepted candidates as new entries
	// and returns them. A persistence failure is reported as an error
	// and no partial acceptance is hidden from the caller.
	AcceptCandidates(ctx context.Context, candidates []domain.WordCandidate) ([]domain.Entry, error)

	// Reset returns the pipeline to idle, discarding pending candidates.
	Reset()
}
