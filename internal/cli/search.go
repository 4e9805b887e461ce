package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pgcurious/search-engine/services"
)

var (
	searchLimit  int
	searchPhrase bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Query the index from the command line",
	Long: `Load the index snapshot and print ranked results for the query.

Examples:
  search-engine search "web crawlers"
  search-engine search --phrase "inverted index"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchPhrase, "phrase", false, "exact-phrase search instead of ranked search")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	eng := newEngine()
	if err := eng.LoadSnapshot(); err != nil {
		return fmt.Errorf("no index to search: %w (run 'search-engine crawl' first)", err)
	}

	query := strings.Join(args, " ")
	var resp services.SearchResponse
	if searchPhrase {
		resp = eng.SearchPhrase(query, searchLimit)
	} else {
		resp = eng.Search(query, searchLimit)
	}

	if len(resp.Results) == 0 {
		fmt.Printf("No results for %q\n", query)
		return nil
	}

	fmt.Printf("%d result(s) for %q (%dms)\n\n", resp.Count, query, resp.Took)
	for i, result := range resp.Results {
		fmt.Printf("%d. %s (score: %.4f)\n", i+1, result.Title, result.Score)
		fmt.Printf("   %s\n", result.URL)
		if len(result.MatchedTerms) > 0 {
			fmt.Printf("   matched: %s\n", strings.Join(result.MatchedTerms, ", "))
		}
		snippet := result.Snippet
		if len(snippet) > 100 {
			snippet = snippet[:100] + "..."
		}
		fmt.Printf("   %s\n\n", snippet)
	}
	return nil
}
