package services

import "github.com/pgcurious/search-engine/model"

// SearchResult is a single ranked hit returned to callers (API, CLI).
type SearchResult struct {
	DocID        string   `json:"doc_id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Snippet      string   `json:"snippet"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms"`
}

// SearchResponse wraps the hits of one query together with its identity and
// timing, so callers can correlate logs and measure latency.
type SearchResponse struct {
	QueryID string         `json:"query_id"`
	Count   int            `json:"count"`
	Took    int64          `json:"took"` // milliseconds
	Results []SearchResult `json:"results"`
}

// IndexStats summarizes the current index for the stats endpoints.
type IndexStats struct {
	DocumentCount         int     `json:"document_count"`
	TermCount             int     `json:"term_count"`
	AverageDocumentLength float64 `json:"average_document_length"`
}

// Indexer defines operations that mutate the index.
type Indexer interface {
	AddDocument(id, title, content, url string)
	AddPages(pages []model.Page) int
	RecomputeScores()
}

// Searcher defines the read-only query operations.
type Searcher interface {
	Search(query string, topK int) SearchResponse
	SearchPhrase(phrase string, topK int) SearchResponse
	Suggest(prefix string, maxSuggestions int) []string
	Stats() IndexStats
}
