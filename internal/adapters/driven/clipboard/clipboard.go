// Package clipboard implements the ClipboardReader port using the system
// clipboard. Only textual content can be read; image captures enter the
// pipeline through file-based extraction instead.
package clipboard

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
)

// Ensure Reader implements the driven port.
var _ driven.ClipboardReader = (*Reader)(nil)

// Reader reads the system clipboard.
type Reader struct{}

// New creates a clipboard reader.
func New() *Reader {
	return &Reader{}
}

// Read returns the current clipboard content. Whitespace-only text is
// reported as empty so the capture flow can surface a useful message
// instead of classifying nothing.
func (r *Reader) Read() (domain.ClipboardContent, error) {
	if clipboard.Unsupported {
		return domain.ClipboardContent{}, fmt.Errorf(
			"%w: no clipboard utility available on this platform", domain.ErrEmptyClipboard)
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return domain.ClipboardContent{}, fmt.Errorf("reading clipboard: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return domain.ClipboardContent{Kind: domain.ClipboardEmpty}, nil
	}
	return domain.ClipboardContent{Kind: domain.ClipboardText, Text: text}, nil
}
