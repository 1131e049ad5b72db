package driven

import "context"

// TextExtractor converts image bytes to text, fallibly. Implementations run
// on-device only and must handle multiple scripts in one image. The call may
// be cancelled through the context; the capture pipeline holds no locks
// while an extraction is pending.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}
