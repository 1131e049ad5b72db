//go:build !cgo

package tesseract

import (
	"context"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor is a stub used in pure Go builds where libtesseract is not
// linked. Every call reports the extractor as unavailable.
type Extractor struct {
	languages []string
}

// New creates a stub extractor. The languages are accepted for interface
// parity and ignored.
func New(languages []string) *Extractor {
	return &Extractor{languages: languages}
}

// ExtractText always fails with domain.ErrExtractorUnavailable.
func (e *Extractor) ExtractText(_ context.Context, _ []byte) (string, error) {
	return "", domain.ErrExtractorUnavailable
}
