// Package cli implements the command-line interface: crawl, serve, search,
// suggest, and stats subcommands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pgcurious/search-engine/config"
	"github.com/pgcurious/search-engine/internal/engine"
	"github.com/pgcurious/search-engine/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "search-engine",
	Short: "Educational search engine with TF-IDF ranking",
	Long: `An educational full-text search engine: it crawls web pages, builds an
inverted index with TF-IDF scores, and serves ranked queries over HTTP or
from the command line.

Example usage:
  search-engine crawl https://example.com   # Crawl and build an index
  search-engine serve                       # Start the HTTP API
  search-engine search "web crawlers"       # Query from the command line`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, optional)")
}

// newEngine creates an engine bound to the configured snapshot path.
func newEngine() *engine.Engine {
	return engine.New(cfg.Storage.SnapshotPath())
}
