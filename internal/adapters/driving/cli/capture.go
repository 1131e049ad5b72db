package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/est22/snatch/internal/core/domain"
)

var (
	captureImagePath string
	captureStdin     bool
	captureYes       bool
)

var captureCmd = &cobra.Command{
	Use:   "capture [text]",
	Short: "Capture and classify text into vocabulary candidates",
	Long: `Classifies text against your language pair and saves the fragments
you accept as new vocabulary entries.

The text comes from the argument, stdin (--stdin), an image file (--image,
needs OCR support) or, with no input given, the system clipboard.

Examples:
  snatch capture "사과는 맛있다. Apple is tasty."
  snatch capture --image screenshot.png
  pbpaste | snatch capture --stdin
  snatch capture`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVar(&captureImagePath, "image", "", "image file to run OCR on")
	captureCmd.Flags().BoolVar(&captureStdin, "stdin", false, "read text from stdin")
	captureCmd.Flags().BoolVarP(&captureYes, "yes", "y", false, "accept all candidates without prompting")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	if captureService == nil {
		return errors.New("capture service not configured")
	}

	ctx := cmd.Context()

	var candidates []domain.WordCandidate
	var err error
	switch {
	case captureImagePath != "":
		var image []byte
		image, err = os.ReadFile(captureImagePath)
		if err != nil {
			return fmt.Errorf("reading image file: %w", err)
		}
		candidates, err = captureService.CaptureImage(ctx, image)
	case captureStdin:
		var text []byte
		text, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		candidates, err = captureService.ClassifyText(ctx, string(text))
	case len(args) == 1:
		candidates, err = captureService.ClassifyText(ctx, args[0])
	default:
		candidates, err = captureService.CaptureClipboard(ctx)
	}
	if err != nil {
		if errors.Is(err, domain.ErrEmptyClipboard) {
			cmd.Println("Clipboard is empty. Copy some text first.")
			return nil
		}
		if errors.Is(err, domain.ErrExtractorUnavailable) {
			return errors.New("OCR is not available in this build")
		}
		return fmt.Errorf("capture failed: %w", err)
	}

	if len(candidates) == 0 {
		cmd.Println("No fragments matched your language pair.")
		return nil
	}

	accepted := candidates
	if !captureYes {
		accepted = selectCandidates(cmd, candidates)
		if len(accepted) == 0 {
			captureService.Reset()
			cmd.Println("Nothing accepted.")
			return nil
		}
	}

	entries, err := captureService.AcceptCandidates(ctx, accepted)
	if err != nil {
		return fmt.Errorf("saving entries: %w", err)
	}

	cmd.Printf("Saved %d entr%s:\n", len(entries), plural(len(entries), "y", "ies"))
	for _, entry := range entries {
		marker := " "
		if entry.Category == domain.CategoryLearning {
			marker = "*"
		}
		cmd.Printf("  %s [%s] %s\n", marker, entry.LangCode, entry.Word)
	}
	return nil
}

// selectCandidates prints the candidate list and prompts for a selection:
// all, none, or a comma-separated list of indices.
func selectCandidates(cmd *cobra.Command, candidates []domain.WordCandidate) []domain.WordCandidate {
	cmd.Printf("Found %d candidate(s):\n", len(candidates))
	for i, c := range candidates {
		tag := "native"
		if c.IsLearningLanguage {
			tag = "learning"
		}
		cmd.Printf("  [%d] (%s, %s) %s\n", i+1, c.LangCode, tag, c.Text)
	}
	cmd.Print("\nAccept which? [a]ll / [n]one / numbers (e.g. 1,3): ")

	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n') //nolint:errcheck // CLI prompt, empty input handled below
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "a", "all":
		return candidates
	case "n", "none":
		return nil
	}

	var selected []domain.WordCandidate
	for _, part := range strings.Split(input, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 1 || idx > len(candidates) {
			continue
		}
		selected = append(selected, candidates[idx-1])
	}
	return selected
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
