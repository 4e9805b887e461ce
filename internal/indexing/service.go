// Package indexing implements document ingestion: it feeds the document
// store and the inverted index from raw {id, title, content, url} tuples.
package indexing

import (
	"fmt"

	"github.com/pgcurious/search-engine/index"
	"github.com/pgcurious/search-engine/internal/tokenizer"
	"github.com/pgcurious/search-engine/model"
	"github.com/pgcurious/search-engine/store"
)

// titleWeight is how many times title tokens are repeated in the weighted
// token multiset relative to content tokens.
const titleWeight = 3

// previewLength caps the stored content preview, in characters.
const previewLength = 500

// Service implements the ingestion logic. It fulfills the write half of the
// services.Indexer interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
}

// NewService creates a new indexing Service. It assumes invertedIndex and
// documentStore are non-nil; nil maps inside them are initialized to
// prevent panics later.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if invertedIndex.Postings == nil {
		invertedIndex.Postings = make(map[string]map[string]int)
	}
	if invertedIndex.DocLengths == nil {
		invertedIndex.DocLengths = make(map[string]int)
	}
	if documentStore.Docs == nil {
		documentStore.Docs = make(map[string]model.Document)
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
	}, nil
}

// AddDocument ingests one document: it stores the metadata (content
// truncated to a 500-character preview), builds the weighted token multiset
// (title tokens count 3x), and records the per-term frequencies and the
// total multiset size. Re-ingesting an existing id replaces its store entry
// and retracts all of its old postings first, so no stale postings survive
// an update. Empty title and content are valid and yield a zero-length
// document with no postings.
//
// The TF-IDF table is not touched here; it is stale until the next
// recompute.
func (s *Service) AddDocument(id, title, content, url string) {
	// Lock order: inverted index before document store, everywhere.
	s.invertedIndex.Mu.Lock()
	s.documentStore.Mu.Lock()
	defer s.documentStore.Mu.Unlock()
	defer s.invertedIndex.Mu.Unlock()

	s.documentStore.Put(id, model.Document{
		Title:   title,
		Content: truncatePreview(content),
		URL:     url,
	})

	// Retract old postings on update. The stored preview is lossy, so the
	// old terms cannot be recovered by re-tokenizing; a full postings scan
	// is the only reliable retraction.
	s.invertedIndex.RemoveDocument(id)

	titleTokens := tokenizer.Tokenize(title)
	contentTokens := tokenizer.Tokenize(content)

	termFrequencies := make(map[string]int, len(titleTokens)+len(contentTokens))
	for _, t := range titleTokens {
		termFrequencies[t] += titleWeight
	}
	for _, t := range contentTokens {
		termFrequencies[t]++
	}

	for term, freq := range termFrequencies {
		s.invertedIndex.SetPosting(term, id, freq)
	}
	s.invertedIndex.DocLengths[id] = titleWeight*len(titleTokens) + len(contentTokens)
}

// AddPages ingests a batch of crawled pages, assigning sequential document
// IDs (doc_0, doc_1, ...) continuing from the current store size. Returns
// the number of pages ingested.
func (s *Service) AddPages(pages []model.Page) int {
	s.documentStore.Mu.RLock()
	next := s.documentStore.Len()
	s.documentStore.Mu.RUnlock()

	for _, page := range pages {
		s.AddDocument(fmt.Sprintf("doc_%d", next), page.Title, page.Content, page.URL)
		next++
	}
	return len(pages)
}

// truncatePreview returns the first previewLength characters of content.
func truncatePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLength {
		return content
	}
	return string(runes[:previewLength])
}
