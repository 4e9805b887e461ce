// Package engine wires the tokenizer, document store, inverted index,
// TF-IDF table, and the indexing/search services into one explicit context
// object. Everything that serves queries or mutates the index goes through
// an Engine; there is no package-level state.
package engine

import (
	"log/slog"

	"github.com/pgcurious/search-engine/index"
	"github.com/pgcurious/search-engine/internal/indexing"
	"github.com/pgcurious/search-engine/internal/logger"
	"github.com/pgcurious/search-engine/internal/scoring"
	"github.com/pgcurious/search-engine/internal/search"
	"github.com/pgcurious/search-engine/model"
	"github.com/pgcurious/search-engine/services"
	"github.com/pgcurious/search-engine/store"
)

// Engine owns the complete state of one search index and implements both
// services.Indexer and services.Searcher. Mutation (AddDocument, AddPages,
// RecomputeScores) and queries are safe to interleave; the underlying
// structures carry their own RWMutexes, and every code path that locks more
// than one of them does so in the fixed order inverted index, document
// store, score table. The intended lifecycle is still the batch pipeline:
// ingest everything, recompute once, then serve and/or persist.
type Engine struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	scores        *scoring.Table

	indexer  *indexing.Service
	searcher *search.Service

	snapshotPath string
	log          *slog.Logger
}

// New creates an empty engine that persists its snapshot to snapshotPath.
func New(snapshotPath string) *Engine {
	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()
	scores := scoring.NewTable()

	// NewService only fails on nil arguments, which cannot happen here.
	indexer, _ := indexing.NewService(invIndex, docStore)

	return &Engine{
		invertedIndex: invIndex,
		documentStore: docStore,
		scores:        scores,
		indexer:       indexer,
		searcher:      search.NewService(invIndex, docStore, scores),
		snapshotPath:  snapshotPath,
		log:           logger.WithComponent("engine"),
	}
}

// AddDocument ingests one document. The TF-IDF table is stale afterwards
// until RecomputeScores runs.
func (e *Engine) AddDocument(id, title, content, url string) {
	e.indexer.AddDocument(id, title, content, url)
}

// AddPages ingests a batch of crawled pages with sequential document IDs.
func (e *Engine) AddPages(pages []model.Page) int {
	return e.indexer.AddPages(pages)
}

// RecomputeScores rebuilds the TF-IDF table from the inverted index and
// document store in one batch pass.
func (e *Engine) RecomputeScores() {
	e.scores.Recompute(e.invertedIndex, e.documentStore)
	e.log.Debug("tf-idf table recomputed", "documents", e.Stats().DocumentCount)
}

// Search answers a ranked free-text query.
func (e *Engine) Search(query string, topK int) services.SearchResponse {
	return e.searcher.Search(query, topK)
}

// SearchPhrase answers an exact-phrase query over stored titles and previews.
func (e *Engine) SearchPhrase(phrase string, topK int) services.SearchResponse {
	return e.searcher.SearchPhrase(phrase, topK)
}

// Suggest completes a prefix against the indexed terms.
func (e *Engine) Suggest(prefix string, maxSuggestions int) []string {
	return e.searcher.Suggest(prefix, maxSuggestions)
}

// Stats reports index size statistics.
func (e *Engine) Stats() services.IndexStats {
	return e.searcher.Stats()
}
