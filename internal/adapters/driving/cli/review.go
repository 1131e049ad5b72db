package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/est22/snatch/internal/core/domain"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review due vocabulary cards",
	Long: `Runs one review session over every card that is currently due.

Each card shows the captured word; press Enter to reveal its example
sentence, then answer y (knew it) or n (didn't). Correct answers move the
card up a Leitner box, wrong answers send it back to box 0.`,
	RunE: runReview,
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show how many cards are due",
	RunE:  runReviewDue,
}

func init() {
	reviewCmd.AddCommand(reviewDueCmd)
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	ctx := cmd.Context()

	session, err := reviewService.StartSession(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoCards) {
			cmd.Println("No cards due. Come back later.")
			return nil
		}
		return fmt.Errorf("starting review session: %w", err)
	}

	cmd.Printf("%d card(s) due.\n\n", session.Size())
	reader := bufio.NewReader(cmd.InOrStdin())

	for {
		card, ok := session.Current()
		if !ok {
			break
		}

		cmd.Printf("[%d/%d] %s (%s, box %d)\n",
			session.Position+1, session.Size(), card.Word, card.LangCode, card.BoxLevel)
		cmd.Print("Press Enter to reveal... ")
		_, _ = reader.ReadString('\n') //nolint:errcheck // prompt only

		if card.ExampleSentence != "" && card.ExampleSentence != card.Word {
			cmd.Printf("  %s\n", card.ExampleSentence)
		}

		correct, quit := askAnswer(cmd, reader)
		if quit {
			cmd.Println("\nSession aborted.")
			break
		}

		if err := reviewService.SubmitAnswer(ctx, session, correct); err != nil {
			return fmt.Errorf("recording answer: %w", err)
		}
		cmd.Println()
	}

	cmd.Printf("Done: %d correct, %d wrong.\n", session.CorrectCount, session.WrongCount)
	return nil
}

// askAnswer prompts until the user answers y, n or q.
func askAnswer(cmd *cobra.Command, reader *bufio.Reader) (correct, quit bool) {
	for {
		cmd.Print("Did you know it? [y/n/q]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return false, true
		}
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes":
			return true, false
		case "n", "no":
			return false, false
		case "q", "quit":
			return false, true
		}
	}
}

func runReviewDue(cmd *cobra.Command, _ []string) error {
	if reviewService == nil {
		return errors.New("review service not configured")
	}

	count, err := reviewService.DueCount(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting due cards: %w", err)
	}

	cmd.Printf("%d card(s) due.\n", count)
	return nil
}
