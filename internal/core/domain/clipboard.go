package domain

// ClipboardKind identifies what the capture adapter found on the clipboard.
type ClipboardKind int

const (
	// ClipboardEmpty means the clipboard held nothing usable.
	ClipboardEmpty ClipboardKind = iota
	// ClipboardText means plain text was read.
	ClipboardText
	// ClipboardImage means raw image bytes were read.
	ClipboardImage
)

// ClipboardContent is the result of one explicit clipboard read.
// Exactly one of Text or Image is populated, according to Kind.
type ClipboardContent struct {
	Kind  ClipboardKind
	Text  string
	Image []byte
}
