package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/pgcurious/search-engine/api"
	apperrors "github.com/pgcurious/search-engine/internal/errors"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP search API",
	Long: `Load the index snapshot and serve search, phrase search, suggestion,
stats, and ingestion endpoints over HTTP. With no snapshot present the
server starts with an empty index; build one with 'crawl' or PUT documents
to /api/documents.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	eng := newEngine()
	if err := eng.LoadSnapshot(); err != nil {
		if !errors.Is(err, apperrors.ErrSnapshotLoad) {
			return err
		}
		slog.Warn("no usable index snapshot, serving an empty index", "error", err)
	}

	port := cfg.Server.Port
	if v, err := cmd.Flags().GetInt("port"); err == nil && v > 0 {
		port = v
	}

	router := gin.Default()
	api.SetupRoutes(router, eng, cfg.Search)

	slog.Info("starting server", "port", port)
	return router.Run(fmt.Sprintf(":%d", port))
}
