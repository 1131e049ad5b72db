package driven

import "github.com/est22/snatch/internal/core/domain"

// ClipboardReader reads the system clipboard on explicit user action.
// There is no polling loop: one call per capture.
type ClipboardReader interface {
	Read() (domain.ClipboardContent, error)
}
