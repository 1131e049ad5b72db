package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"context"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
	"github.com/est22/snatch/internal/core/ports/driving"
	"github.com/est22/snatch/internal/logger"
)

// Ensure CaptureService implements the interface.
var _ driving.CaptureService = (*CaptureService)(nil)

// CaptureService drives the capture pipeline from raw input to persisted
// entries. The pipeline state is explicit and independent of any rendering
// surface. No lock is held while an OCR extraction is pending.
type CaptureService struct {
	clipboard  driven.ClipboardReader
	extractor  driven.TextExtractor
	classifier *Classifier
	pairs      driven.PairStore
	entries    driven.EntryStore

	// now is injectable for tests.
	now func() time.Time

	mu    sync.Mutex
	state domain.PipelineState
}

// NewCaptureService creates the capture pipeline. The extractor may be nil,
// in which case image captures fail with domain.ErrExtractorUnavailable.
func NewCaptureService(
	clipboard driven.ClipboardReader,
	extractor driven.TextExtractor,
	classifier *Classifier,
	pairs driven.PairStore,
	entries driven.EntryStore,
) *CaptureService {
	return &CaptureService{
		clipboard:  clipboard,
		extractor:  extractor,
		classifier: classifier,
		pairs:      pairs,
		entries:    entries,
		now:        time.Now,
		state:      domain.StateIdle,
	}
}

// State returns the current pipeline state.
func (s *CaptureService) State() domain.PipelineState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *CaptureService) setState(state domain.PipelineState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Reset returns the pipeline to idle, discarding pending candidates.
func (s *CaptureService) Reset() {
	s.setState(domain.StateIdle)
}

// ClassifyText segments and classifies text against the current language
// pair. The pair is read fresh on every call; if the pair store cannot be
// read the defaults (ko, en) apply and classification proceeds.
func (s *CaptureService) ClassifyText(ctx context.Context, text string) ([]domain.WordCandidate, error) {
	s.setState(domain.StateClassifying)

	pair, err := s.pairs.Get(ctx)
	if err != nil {
		logger.Warn("capture: language pair unavailable, using defaults: %v", err)
		pair = domain.DefaultLanguagePair()
	}

	candidates := s.classifier.Classify(text, pair)
	logger.Debug("capture: %d candidate(s) from %d byte input", len(candidates), len(text))

	if len(candidates) == 0 {
		s.setState(domain.StateIdle)
	} else {
		s.setState(domain.StateReviewingCandidates)
	}
	return candidates, nil
}

// CaptureClipboard reads the clipboard once and routes its content through
// the pipeline. An empty clipboard is reported as domain.ErrEmptyClipboard
// and does not start a pipeline run.
func (s *CaptureService) CaptureClipboard(ctx context.Context) ([]domain.WordCandidate, error) {
	content, err := s.clipboard.Read()
	if err != nil {
		s.setState(domain.StateError)
		return nil, fmt.Errorf("reading clipboard: %w", err)
	}

	switch content.Kind {
	case domain.ClipboardText:
		return s.ClassifyText(ctx, content.Text)
	case domain.ClipboardImage:
		return s.CaptureImage(ctx, content.Image)
	default:
		return nil, domain.ErrEmptyClipboard
	}
}

// CaptureImage extracts text from image bytes and classifies the result.
// The extraction is the only suspending step in the pipeline and honours
// ctx cancellation. Extraction failure aborts this capture only.
func (s *CaptureService) CaptureImage(ctx context.Context, image []byte) ([]domain.WordCandidate, error) {
	if s.extractor == nil {
		s.setState(domain.StateError)
		return nil, domain.ErrExtractorUnavailable
	}

	s.setState(domain.StateExtracting)
	text, err := s.extractor.ExtractText(ctx, image)
	if err != nil {
		s.setState(domain.StateError)
		return nil, fmt.Errorf("extracting text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		s.setState(domain.StateError)
		return nil, domain.ErrExtractionFailed
	}

	return s.ClassifyText(ctx, text)
}

// AcceptCandidates persists the accepted candidates as new entries in box 0.
// Candidates that are empty after trimming are skipped. On a write failure
// the entries created so far are returned alongside the error; the failed
// write is never reported as applied.
func (s *CaptureService) AcceptCandidates(
	ctx context.Context,
	candidates []domain.WordCandidate,
) ([]domain.Entry, error) {
	now := s.now()

	created := make([]domain.Entry, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}

		entry := domain.NewEntry(c, now)
		if err := s.entries.Save(ctx, entry); err != nil {
			s.setState(domain.StateError)
			return created, fmt.Errorf("saving entry %q: %w", entry.Word, err)
		}
		created = append(created, entry)
	}

	logger.Info("capture: accepted %d entr(ies)", len(created))
	s.setState(domain.StateIdle)
	return created, nil
}
