package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/est22/snatch/internal/core/domain"
)

var (
	listLang      string
	listFavorites bool
	listSearch    string
	listJSON      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List captured vocabulary",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listLang, "lang", "", "filter by language code (e.g. ko)")
	listCmd.Flags().BoolVar(&listFavorites, "favorites", false, "only favorites")
	listCmd.Flags().StringVar(&listSearch, "search", "", "substring match on word or example")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output entries as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if vocabularyService == nil {
		return errors.New("vocabulary service not configured")
	}

	filter := domain.EntryFilter{
		FavoritesOnly: listFavorites,
		Search:        listSearch,
	}
	if listLang != "" {
		filter.LangCode = domain.NormalizeLangCode(listLang)
	}

	entries, err := vocabularyService.List(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling entries: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("No entries found.")
		return nil
	}

	cmd.Printf("%d entr%s:\n\n", len(entries), plural(len(entries), "y", "ies"))
	for _, entry := range entries {
		star := " "
		if entry.IsFavorite {
			star = "★"
		}
		cmd.Printf("  %s [%s] %-20s box %d  %s\n",
			star, entry.LangCode, entry.Word, entry.BoxLevel, entry.ID)
	}
	return nil
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a vocabulary entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if vocabularyService == nil {
		return errors.New("vocabulary service not configured")
	}

	if err := vocabularyService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	cmd.Println("Deleted.")
	return nil
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle an entry's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavorite,
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}

func runFavorite(cmd *cobra.Command, args []string) error {
	if vocabularyService == nil {
		return errors.New("vocabulary service not configured")
	}

	on, err := vocabularyService.ToggleFavorite(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no entry with ID %q", args[0])
		}
		return fmt.Errorf("toggling favorite: %w", err)
	}

	if on {
		cmd.Println("Marked as favorite.")
	} else {
		cmd.Println("Removed from favorites.")
	}
	return nil
}
