// Package store holds per-document metadata: title, content preview, and
// source URL, keyed by document ID.
package store

import (
	"sort"
	"sync"

	"github.com/pgcurious/search-engine/model"
)

// DocumentStore maps document IDs to their stored metadata. The order slice
// remembers the sequence in which IDs were first ingested so that callers
// can iterate documents deterministically (phrase search ties, ranked-search
// tie-breaking).
type DocumentStore struct {
	Mu    sync.RWMutex
	Docs  map[string]model.Document
	order []string
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{Docs: make(map[string]model.Document)}
}

// Put stores doc under id, overwriting any prior entry. A new id is appended
// to the iteration order; a replaced id keeps its original position.
// Caller must hold the write lock.
func (ds *DocumentStore) Put(id string, doc model.Document) {
	if _, exists := ds.Docs[id]; !exists {
		ds.order = append(ds.order, id)
	}
	ds.Docs[id] = doc
}

// Get returns the document stored under id.
func (ds *DocumentStore) Get(id string) (model.Document, bool) {
	doc, ok := ds.Docs[id]
	return doc, ok
}

// Order returns document IDs in ingestion order. The returned slice is
// shared; callers must not mutate it. Caller must hold a read lock.
func (ds *DocumentStore) Order() []string {
	return ds.order
}

// Len returns the number of stored documents.
func (ds *DocumentStore) Len() int {
	return len(ds.Docs)
}

// Replace installs docs as the store's full content, e.g. when restoring a
// snapshot. Ingestion order is not part of the snapshot, so the iteration
// order is rebuilt as sorted document IDs. Caller must hold the write lock.
func (ds *DocumentStore) Replace(docs map[string]model.Document) {
	if docs == nil {
		docs = make(map[string]model.Document)
	}
	ds.Docs = docs

	ds.order = make([]string, 0, len(docs))
	for id := range docs {
		ds.order = append(ds.order, id)
	}
	sort.Strings(ds.order)
}
