package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print index statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine()
		if err := eng.LoadSnapshot(); err != nil {
			return fmt.Errorf("no index found: %w (run 'search-engine crawl' first)", err)
		}

		stats := eng.Stats()
		fmt.Printf("Documents:               %d\n", stats.DocumentCount)
		fmt.Printf("Unique terms:            %d\n", stats.TermCount)
		fmt.Printf("Average document length: %.1f tokens\n", stats.AverageDocumentLength)
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "Print term suggestions for a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := newEngine()
		if err := eng.LoadSnapshot(); err != nil {
			return fmt.Errorf("no index found: %w (run 'search-engine crawl' first)", err)
		}

		suggestions := eng.Suggest(args[0], cfg.Search.MaxSuggestions)
		if len(suggestions) == 0 {
			fmt.Printf("No suggestions for %q\n", args[0])
			return nil
		}
		fmt.Println(strings.Join(suggestions, "\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(suggestCmd)
}
