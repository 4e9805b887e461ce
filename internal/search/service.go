// Package search implements the query side of the engine: ranked TF-IDF
// search, exact-phrase fallback, and prefix suggestions. It only ever reads
// the index, store, and score table.
package search

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pgcurious/search-engine/index"
	"github.com/pgcurious/search-engine/internal/scoring"
	"github.com/pgcurious/search-engine/internal/tokenizer"
	"github.com/pgcurious/search-engine/services"
	"github.com/pgcurious/search-engine/store"
)

const (
	defaultTopK        = 10
	defaultSuggestions = 5

	// phraseTitleWeight is the score multiplier for phrase occurrences in
	// the title, mirroring the 3x title weight used at indexing time.
	phraseTitleWeight = 3
)

// Service implements the services.Searcher interface for one engine.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	scores        *scoring.Table
}

// NewService creates a new search Service over the given read-only state.
func NewService(invIndex *index.InvertedIndex, docStore *store.DocumentStore, scores *scoring.Table) *Service {
	return &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		scores:        scores,
	}
}

// Search tokenizes the query, accumulates per-document TF-IDF scores across
// the query terms, and returns the topK documents by descending score.
// Documents are visited in store ingestion order per term, so equal scores
// keep the order in which documents first scored. A query that tokenizes to
// nothing, or one where no document accumulates a positive score, yields an
// empty result set.
func (s *Service) Search(query string, topK int) services.SearchResponse {
	startTime := time.Now()
	resp := services.SearchResponse{
		QueryID: uuid.New().String(),
		Results: []services.SearchResult{},
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	queryTerms := tokenizer.Tokenize(query)
	if len(queryTerms) == 0 {
		resp.Took = time.Since(startTime).Milliseconds()
		return resp
	}

	// Lock order: inverted index, then document store, then score table.
	s.invertedIndex.Mu.RLock()
	s.documentStore.Mu.RLock()
	s.scores.Mu.RLock()
	defer s.scores.Mu.RUnlock()
	defer s.documentStore.Mu.RUnlock()
	defer s.invertedIndex.Mu.RUnlock()

	docScores := make(map[string]float64)
	scored := make([]string, 0) // doc IDs in the order they first scored

	for _, term := range queryTerms {
		termScores := s.scores.TermScores(term)
		if termScores == nil {
			continue
		}
		for _, docID := range s.documentStore.Order() {
			score, ok := termScores[docID]
			if !ok {
				continue
			}
			if _, seen := docScores[docID]; !seen {
				scored = append(scored, docID)
			}
			docScores[docID] += score
		}
	}

	anyPositive := false
	for _, score := range docScores {
		if score > 0 {
			anyPositive = true
			break
		}
	}
	if !anyPositive {
		resp.Took = time.Since(startTime).Milliseconds()
		return resp
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return docScores[scored[i]] > docScores[scored[j]]
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}

	for _, docID := range scored {
		doc, ok := s.documentStore.Get(docID)
		if !ok {
			continue
		}
		resp.Results = append(resp.Results, services.SearchResult{
			DocID:        docID,
			Title:        doc.Title,
			URL:          doc.URL,
			Snippet:      doc.Content,
			Score:        roundScore(docScores[docID]),
			MatchedTerms: s.matchedTerms(docID, queryTerms),
		})
	}
	resp.Count = len(resp.Results)
	resp.Took = time.Since(startTime).Milliseconds()
	return resp
}

// matchedTerms returns the query terms (in original query order) that have a
// posting for docID. Caller must hold the inverted index read lock.
func (s *Service) matchedTerms(docID string, queryTerms []string) []string {
	matched := make([]string, 0, len(queryTerms))
	for _, term := range queryTerms {
		if _, ok := s.invertedIndex.Postings[term][docID]; ok {
			matched = append(matched, term)
		}
	}
	return matched
}

// SearchPhrase performs a case-insensitive substring scan over every stored
// document's title and content preview. The score is the content occurrence
// count plus three times the title occurrence count; only documents with a
// positive score are returned, descending, ties in ingestion order. This is
// a fallback mode that bypasses the inverted index entirely.
func (s *Service) SearchPhrase(phrase string, topK int) services.SearchResponse {
	startTime := time.Now()
	resp := services.SearchResponse{
		QueryID: uuid.New().String(),
		Results: []services.SearchResult{},
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	phraseLower := strings.ToLower(phrase)
	if strings.TrimSpace(phraseLower) == "" {
		resp.Took = time.Since(startTime).Milliseconds()
		return resp
	}

	s.documentStore.Mu.RLock()
	defer s.documentStore.Mu.RUnlock()

	type phraseHit struct {
		docID string
		score int
	}
	hits := make([]phraseHit, 0)

	for _, docID := range s.documentStore.Order() {
		doc, ok := s.documentStore.Get(docID)
		if !ok {
			continue
		}
		content := strings.ToLower(doc.Content)
		title := strings.ToLower(doc.Title)

		score := strings.Count(content, phraseLower) + phraseTitleWeight*strings.Count(title, phraseLower)
		if score > 0 {
			hits = append(hits, phraseHit{docID: docID, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > topK {
		hits = hits[:topK]
	}

	for _, hit := range hits {
		doc, _ := s.documentStore.Get(hit.docID)
		resp.Results = append(resp.Results, services.SearchResult{
			DocID:        hit.docID,
			Title:        doc.Title,
			URL:          doc.URL,
			Snippet:      doc.Content,
			Score:        float64(hit.score),
			MatchedTerms: []string{phrase},
		})
	}
	resp.Count = len(resp.Results)
	resp.Took = time.Since(startTime).Milliseconds()
	return resp
}

// Suggest returns up to maxSuggestions indexed terms that start with the
// lowercased prefix, ordered by descending document frequency. Equal
// frequencies tie-break lexicographically so the order is deterministic.
func (s *Service) Suggest(prefix string, maxSuggestions int) []string {
	if maxSuggestions <= 0 {
		maxSuggestions = defaultSuggestions
	}
	prefixLower := strings.ToLower(prefix)

	s.invertedIndex.Mu.RLock()
	defer s.invertedIndex.Mu.RUnlock()

	type suggestion struct {
		term    string
		docFreq int
	}
	candidates := make([]suggestion, 0)
	for term, docs := range s.invertedIndex.Postings {
		if strings.HasPrefix(term, prefixLower) {
			candidates = append(candidates, suggestion{term: term, docFreq: len(docs)})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].docFreq != candidates[j].docFreq {
			return candidates[i].docFreq > candidates[j].docFreq
		}
		return candidates[i].term < candidates[j].term
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	terms := make([]string, len(candidates))
	for i, c := range candidates {
		terms[i] = c.term
	}
	return terms
}

// Stats reports the current size of the index.
func (s *Service) Stats() services.IndexStats {
	s.invertedIndex.Mu.RLock()
	s.documentStore.Mu.RLock()
	defer s.invertedIndex.Mu.RUnlock()
	defer s.documentStore.Mu.RUnlock()

	stats := services.IndexStats{
		DocumentCount: s.documentStore.Len(),
		TermCount:     len(s.invertedIndex.Postings),
	}
	if len(s.invertedIndex.DocLengths) > 0 {
		total := 0
		for _, length := range s.invertedIndex.DocLengths {
			total += length
		}
		stats.AverageDocumentLength = float64(total) / float64(len(s.invertedIndex.DocLengths))
	}
	return stats
}

// roundScore rounds a TF-IDF score to 4 decimal places for presentation.
func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}
