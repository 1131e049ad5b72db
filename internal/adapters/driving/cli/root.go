// Package cli implements the cobra command tree. Commands talk to the core
// through the driving service interfaces; the services are injected by the
// entrypoint before Execute runs.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/est22/snatch/internal/core/ports/driving"
	"github.com/est22/snatch/internal/logger"
)

// version is the build version, injected via SetVersion.
var version = "dev"

// Services used by the commands. Nil until the entrypoint wires them.
var (
	captureService    driving.CaptureService
	reviewService     driving.ReviewService
	vocabularyService driving.VocabularyService
	settingsService   driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "snatch",
	Short: "Capture vocabulary from anything you read",
	Long: `Snatch captures text from your clipboard or OCR, splits it into
language-tagged fragments, and files the words you want to learn into a
Leitner box for spaced-repetition review.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetCaptureService wires the capture pipeline into the command tree.
func SetCaptureService(s driving.CaptureService) {
	captureService = s
}

// SetReviewService wires the review service into the command tree.
func SetReviewService(s driving.ReviewService) {
	reviewService = s
}

// SetVocabularyService wires the vocabulary service into the command tree.
func SetVocabularyService(s driving.VocabularyService) {
	vocabularyService = s
}

// SetSettingsService wires the settings service into the command tree.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context, which is
// propagated to long-running commands like tui and mcp serve.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
