// Command snatch captures vocabulary from clipboard, text and images and
// schedules it for Leitner spaced-repetition review.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/est22/snatch/internal/adapters/driven/clipboard"
	configfile "github.com/est22/snatch/internal/adapters/driven/config/file"
	"github.com/est22/snatch/internal/adapters/driven/extractor/tesseract"
	"github.com/est22/snatch/internal/adapters/driven/identifier/lingua"
	"github.com/est22/snatch/internal/adapters/driven/storage/sqlite"
	"github.com/est22/snatch/internal/adapters/driving/cli"
	"github.com/est22/snatch/internal/core/services"
	"github.com/est22/snatch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Config lives at ~/.snatch/config.toml.
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	go func() {
		if err := config.Watch(ctx, func() {
			logger.Debug("config reloaded from %s", config.Path())
		}); err != nil && ctx.Err() == nil {
			logger.Warn("config watcher stopped: %v", err)
		}
	}()

	// Entry and pair storage, sqlite under ~/.snatch/data.
	store, err := sqlite.NewStore(config.GetString("storage.data_dir"))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing store: %v", err)
		}
	}()

	entries := store.EntryStore()
	pairs := store.PairStore()

	// OCR languages are tesseract traineddata names.
	ocrLanguages := config.GetStringSlice("ocr.languages")
	if len(ocrLanguages) == 0 {
		ocrLanguages = []string{"eng", "kor"}
	}

	identifier := lingua.New()
	segmenter := services.NewSegmenter(identifier)
	classifier := services.NewClassifier(segmenter)

	captureService := services.NewCaptureService(
		clipboard.New(),
		tesseract.New(ocrLanguages),
		classifier,
		pairs,
		entries,
	)
	reviewService := services.NewReviewService(entries, nil)
	vocabularyService := services.NewVocabularyService(entries)
	settingsService := services.NewSettingsService(pairs)

	cli.SetVersion(version)
	cli.SetCaptureService(captureService)
	cli.SetReviewService(reviewService)
	cli.SetVocabularyService(vocabularyService)
	cli.SetSettingsService(settingsService)

	return cli.ExecuteContext(ctx)
}
