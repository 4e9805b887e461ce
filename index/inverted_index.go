// Package index holds the inverted index: the term-to-documents mapping the
// whole engine is built around.
package index

import "sync"

// InvertedIndex maps each term to the documents containing it, together with
// the weighted term frequency within each document. DocLengths records the
// size of every document's weighted token multiset and is the TF normalizer;
// after every ingestion the sum of a document's posting frequencies must
// equal its entry in DocLengths.
type InvertedIndex struct {
	Mu         sync.RWMutex
	Postings   map[string]map[string]int // term -> docID -> weighted frequency
	DocLengths map[string]int            // docID -> weighted token count
}

// NewInvertedIndex creates an empty, ready-to-use index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		Postings:   make(map[string]map[string]int),
		DocLengths: make(map[string]int),
	}
}

// SetPosting records the weighted frequency of term in docID, overwriting
// any previous value. Caller must hold the write lock.
func (ii *InvertedIndex) SetPosting(term, docID string, freq int) {
	docs, ok := ii.Postings[term]
	if !ok {
		docs = make(map[string]int)
		ii.Postings[term] = docs
	}
	docs[docID] = freq
}

// Frequency returns the weighted frequency of term in docID, zero when
// either the term or the document is absent. Caller must hold a read lock.
func (ii *InvertedIndex) Frequency(term, docID string) int {
	return ii.Postings[term][docID]
}

// DocumentFrequency returns the number of distinct documents containing
// term. Caller must hold a read lock.
func (ii *InvertedIndex) DocumentFrequency(term string) int {
	return len(ii.Postings[term])
}

// RemoveDocument retracts every posting for docID and drops its length
// entry. Terms whose posting list becomes empty are deleted outright.
// Caller must hold the write lock.
func (ii *InvertedIndex) RemoveDocument(docID string) {
	for term, docs := range ii.Postings {
		if _, ok := docs[docID]; ok {
			delete(docs, docID)
			if len(docs) == 0 {
				delete(ii.Postings, term)
			}
		}
	}
	delete(ii.DocLengths, docID)
}
