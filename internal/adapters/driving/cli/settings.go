package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/est22/snatch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLanguagesCmd = &cobra.Command{
	Use:   "languages <native> <learning>",
	Short: "Set the language pair",
	Long: `Sets the native and learning languages as ISO 639-1 codes.

Only fragments in one of these two languages are kept during capture;
everything else is dropped.

Example:
  snatch settings languages ko en`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsLanguages,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLanguagesCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	pair, err := settingsService.LanguagePair(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Languages]")
	cmd.Printf("  Native:   %s\n", pair.Native)
	cmd.Printf("  Learning: %s\n", pair.Learning)
	if !pair.UpdatedAt.IsZero() {
		cmd.Printf("  Updated:  %s\n", pair.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runSettingsLanguages(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	pair, err := settingsService.SetLanguagePair(cmd.Context(), args[0], args[1])
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("invalid language codes %q, %q: use 2-letter ISO 639-1 codes like ko, en", args[0], args[1])
		}
		return fmt.Errorf("saving language pair: %w", err)
	}

	cmd.Printf("Language pair set: native=%s learning=%s\n", pair.Native, pair.Learning)
	return nil
}
