//go:build cgo

package tesseract

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
	"github.com/est22/snatch/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor runs Tesseract OCR over image bytes. A single client is shared
// across calls; gosseract clients are not safe for concurrent use, so a
// mutex serialises extraction.
type Extractor struct {
	mu        sync.Mutex
	languages []string
}

// New creates an extractor. languages are Tesseract traineddata names
// ("eng", "kor", ...); an empty list uses Tesseract's default.
func New(languages []string) *Extractor {
	return &Extractor{languages: languages}
}

// ExtractText recognises text in the given image bytes. The context is
// checked before the (blocking, CPU-bound) recognition starts; Tesseract
// itself cannot be interrupted mid-run.
func (e *Extractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: empty image", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	client := gosseract.NewClient()
	defer client.Close()

	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("%w: setting OCR languages: %v", domain.ErrExtractionFailed, err)
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("%w: loading image: %v", domain.ErrExtractionFailed, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	text = strings.TrimSpace(text)
	logger.Debug("tesseract: extracted %d byte(s) of text", len(text))
	return text, nil
}
