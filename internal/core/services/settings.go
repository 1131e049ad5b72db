package services

import (
	"context"
	"fmt"
	"time"

	"github.com/est22/snatch/internal/core/domain"
	"github.com/est22/snatch/internal/core/ports/driven"
	"github.com/est22/snatch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages the language pair configuration.
type SettingsService struct {
	pairs driven.PairStore

	// clock is injectable for tests.
	clock func() time.Time
}

// NewSettingsService creates a settings service.
func NewSettingsService(pairs driven.PairStore) *SettingsService {
	return &SettingsService{
		pairs: pairs,
		clock: time.Now,
	}
}

// LanguagePair returns the active pair, falling back to defaults when
// nothing has been configured.
func (s *SettingsService) LanguagePair(ctx context.Context) (domain.LanguagePair, error) {
	pair, err := s.pairs.Get(ctx)
	if err != nil {
		return domain.LanguagePair{}, fmt.Errorf("loading language pair: %w", err)
	}
	return pair.Normalized(), nil
}

// SetLanguagePair normalizes and stores a new pair. Codes that do not
// normalize to a 2-letter subtag are rejected.
func (s *SettingsService) SetLanguagePair(
	ctx context.Context,
	native, learning string,
) (domain.LanguagePair, error) {
	pair := domain.LanguagePair{
		Native:    domain.NormalizeLangCode(native),
		Learning:  domain.NormalizeLangCode(learning),
		UpdatedAt: s.clock().UTC(),
	}

	if pair.Native.IsUndetermined() || pair.Learning.IsUndetermined() {
		return domain.LanguagePair{}, fmt.Errorf(
			"%w: language codes must be 2-letter ISO 639-1 codes", domain.ErrInvalidInput)
	}

	if err := s.pairs.Set(ctx, pair); err != nil {
		return domain.LanguagePair{}, fmt.Errorf("saving language pair: %w", err)
	}
	return pair, nil
}
