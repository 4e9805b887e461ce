// Package scoring maintains the TF-IDF table derived from the inverted
// index. The table is recomputed wholesale; it is never updated
// incrementally, so any ingestion after a recompute leaves it stale until
// the next recompute.
package scoring

import (
	"math"
	"sync"

	"github.com/pgcurious/search-engine/index"
	"github.com/pgcurious/search-engine/store"
)

// Table holds the per-term, per-document TF-IDF scores.
type Table struct {
	Mu     sync.RWMutex
	Scores map[string]map[string]float64 // term -> docID -> score
}

// NewTable creates an empty score table.
func NewTable() *Table {
	return &Table{Scores: make(map[string]map[string]float64)}
}

// Recompute replaces the table with a full batch pass over every term and
// every document holding that term:
//
//	idf = ln(N / df)
//	tf  = freq / docLength   (0 when docLength is 0)
//
// With zero documents the table is left empty. Runs in O(total postings).
func (t *Table) Recompute(invIndex *index.InvertedIndex, docStore *store.DocumentStore) {
	invIndex.Mu.RLock()
	docStore.Mu.RLock()
	defer invIndex.Mu.RUnlock()
	defer docStore.Mu.RUnlock()

	scores := make(map[string]map[string]float64, len(invIndex.Postings))
	numDocs := docStore.Len()

	if numDocs > 0 {
		for term, docFreqs := range invIndex.Postings {
			idf := math.Log(float64(numDocs) / float64(len(docFreqs)))

			termScores := make(map[string]float64, len(docFreqs))
			for docID, freq := range docFreqs {
				var tf float64
				if docLength := invIndex.DocLengths[docID]; docLength > 0 {
					tf = float64(freq) / float64(docLength)
				}
				termScores[docID] = tf * idf
			}
			scores[term] = termScores
		}
	}

	t.Mu.Lock()
	defer t.Mu.Unlock()
	t.Scores = scores
}

// TermScores returns the per-document scores for term, nil when the term is
// unknown. Caller must hold a read lock.
func (t *Table) TermScores(term string) map[string]float64 {
	return t.Scores[term]
}
