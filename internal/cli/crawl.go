package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pgcurious/search-engine/internal/crawler"
	"github.com/pgcurious/search-engine/model"
)

var (
	crawlMaxPages  int
	crawlAnyDomain bool
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <seed-url>",
	Short: "Crawl a website and build the search index",
	Long: `Crawl pages breadth-first from the seed URL, build the inverted index,
compute TF-IDF scores, and save the index snapshot.

Examples:
  search-engine crawl https://example.com
  search-engine crawl --max-pages 20 https://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().IntVar(&crawlMaxPages, "max-pages", 0, "maximum number of pages to crawl (overrides config)")
	crawlCmd.Flags().BoolVar(&crawlAnyDomain, "any-domain", false, "follow links to other domains")
	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	crawlCfg := cfg.Crawler
	if crawlMaxPages > 0 {
		crawlCfg.MaxPages = crawlMaxPages
	}
	if crawlAnyDomain {
		crawlCfg.SameDomain = false
	}

	bar := progressbar.Default(int64(crawlCfg.MaxPages), "crawling")
	c := crawler.New(crawlCfg)
	c.OnPage = func(model.Page) {
		_ = bar.Add(1)
	}

	pages, err := c.Crawl(cmd.Context(), []string{args[0]})
	if err != nil {
		return fmt.Errorf("crawl aborted: %w", err)
	}
	_ = bar.Finish()
	if len(pages) == 0 {
		return fmt.Errorf("no pages could be fetched from %s", args[0])
	}

	eng := newEngine()
	indexed := eng.AddPages(pages)
	eng.RecomputeScores()
	if err := eng.SaveSnapshot(); err != nil {
		return fmt.Errorf("failed to save index snapshot: %w", err)
	}

	stats := eng.Stats()
	fmt.Printf("Indexed %d pages: %d terms, average document length %.1f tokens\n",
		indexed, stats.TermCount, stats.AverageDocumentLength)
	fmt.Printf("Snapshot saved to %s\n", cfg.Storage.SnapshotPath())
	return nil
}
