package domain

// Segment is a language-tagged span produced by the segmenter. Spans are
// trimmed, non-empty and appear in source-text order.
type Segment struct {
	// Text is the trimmed span content.
	Text string

	// LangCode is the dominant language of the span.
	LangCode LangCode
}

// WordCandidate is a classified span proposed for capture. Candidates are
// transient: they exist between classification and the user's
// accept/reject decision and are never persisted.
type WordCandidate struct {
	// Text is the candidate fragment.
	Text string

	// LangCode is the normalized language of the fragment.
	LangCode LangCode

	// IsLearningLanguage is true when the fragment matched the user's
	// learning language rather than their native one.
	IsLearningLanguage bool

	// FullSourceText is the complete input the fragment was found in.
	FullSourceText string
}

// PipelineState tracks where a capture is in the pipeline. It is owned by
// the capture service and independent of any rendering surface.
type PipelineState int

const (
	// StateIdle means no capture is in progress.
	StateIdle PipelineState = iota
	// StateExtracting means an OCR extraction is pending.
	StateExtracting
	// StateClassifying means segmentation and classification are running.
	StateClassifying
	// StateReviewingCandidates means candidates await the user's decision.
	StateReviewingCandidates
	// StateError means the last capture failed; input is accepted again
	// after a reset.
	StateError
)

// String returns the state name for logs and status displays.
func (s PipelineState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExtracting:
		return "extracting"
	case StateClassifying:
		return "classifying"
	case StateReviewingCandidates:
		return "reviewing_candidates"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
