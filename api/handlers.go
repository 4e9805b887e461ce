// Package api exposes the engine over HTTP: search, phrase search,
// suggestions, stats, and document ingestion.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pgcurious/search-engine/config"
	"github.com/pgcurious/search-engine/internal/logger"
	"github.com/pgcurious/search-engine/services"
)

// Engine is the slice of engine behavior the API layer depends on.
type Engine interface {
	services.Indexer
	services.Searcher
	SaveSnapshot() error
}

// API holds dependencies for the HTTP handlers.
type API struct {
	engine Engine
	search config.SearchConfig
	log    *slog.Logger
}

// NewAPI creates a new API handler structure.
func NewAPI(engine Engine, searchCfg config.SearchConfig) *API {
	return &API{
		engine: engine,
		search: searchCfg,
		log:    logger.WithComponent("api"),
	}
}

// SetupRoutes defines all the HTTP routes.
func SetupRoutes(router *gin.Engine, engine Engine, searchCfg config.SearchConfig) {
	apiHandler := NewAPI(engine, searchCfg)

	router.GET("/health", apiHandler.HealthCheckHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/search", apiHandler.SearchHandler)
		apiRoutes.GET("/phrase", apiHandler.PhraseSearchHandler)
		apiRoutes.GET("/suggest", apiHandler.SuggestHandler)
		apiRoutes.GET("/stats", apiHandler.StatsHandler)
		apiRoutes.PUT("/documents", apiHandler.AddDocumentsHandler)
	}
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SearchHandler handles ranked search queries.
// Query params: q (required), limit (optional).
func (api *API) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "No query provided")
		return
	}

	resp := api.engine.Search(query, api.limitParam(c))
	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"query_id": resp.QueryID,
		"count":    resp.Count,
		"took":     resp.Took,
		"results":  resp.Results,
	})
}

// PhraseSearchHandler handles exact-phrase queries.
// Query params: q (required), limit (optional).
func (api *API) PhraseSearchHandler(c *gin.Context) {
	phrase := c.Query("q")
	if phrase == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "No phrase provided")
		return
	}

	resp := api.engine.SearchPhrase(phrase, api.limitParam(c))
	c.JSON(http.StatusOK, gin.H{
		"query":    phrase,
		"query_id": resp.QueryID,
		"count":    resp.Count,
		"took":     resp.Took,
		"results":  resp.Results,
	})
}

// SuggestHandler returns prefix completions for the q parameter. Prefixes
// shorter than the configured minimum yield an empty suggestion list.
func (api *API) SuggestHandler(c *gin.Context) {
	prefix := c.Query("q")
	if len(prefix) < api.search.MinPrefixLength {
		c.JSON(http.StatusOK, gin.H{"suggestions": []string{}})
		return
	}

	suggestions := api.engine.Suggest(prefix, api.search.MaxSuggestions)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// StatsHandler reports index statistics.
func (api *API) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Stats())
}

// DocumentRequest is one document in an ingestion request.
type DocumentRequest struct {
	ID      string `json:"id" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// AddDocumentsHandler ingests a batch of documents, recomputes the TF-IDF
// table, and persists a fresh snapshot.
func (api *API) AddDocumentsHandler(c *gin.Context) {
	var docs []DocumentRequest
	if err := c.ShouldBindJSON(&docs); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(docs) == 0 {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "No documents provided")
		return
	}

	for _, doc := range docs {
		api.engine.AddDocument(doc.ID, doc.Title, doc.Content, doc.URL)
	}
	api.engine.RecomputeScores()

	if err := api.engine.SaveSnapshot(); err != nil {
		api.log.Error("failed to persist snapshot after ingestion", "error", err)
		SendError(c, http.StatusInternalServerError, ErrorCodePersistenceFailed, "Documents indexed but snapshot could not be saved")
		return
	}

	c.JSON(http.StatusOK, gin.H{"indexed": len(docs)})
}

// limitParam parses the optional limit query parameter, falling back to the
// configured default and clamping to the configured maximum.
func (api *API) limitParam(c *gin.Context) int {
	limit := api.search.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > api.search.MaxLimit {
		limit = api.search.MaxLimit
	}
	return limit
}
