package engine

import (
	"github.com/pgcurious/search-engine/internal/errors"
	"github.com/pgcurious/search-engine/internal/persistence"
	"github.com/pgcurious/search-engine/model"
)

// Snapshot is the complete persisted state of an engine: the four-field
// record combining the inverted index, document store, document lengths,
// and TF-IDF table. The JSON tags document the canonical field names of the
// snapshot layout.
type Snapshot struct {
	InvertedIndex map[string]map[string]int     `json:"inverted_index"`
	Documents     map[string]model.Document     `json:"documents"`
	DocLengths    map[string]int                `json:"doc_lengths"`
	TFIDFScores   map[string]map[string]float64 `json:"tfidf_scores"`
}

// SaveSnapshot writes the engine's current state to the configured snapshot
// path. Call it after RecomputeScores so the persisted TF-IDF table matches
// the persisted index.
func (e *Engine) SaveSnapshot() error {
	e.invertedIndex.Mu.RLock()
	e.documentStore.Mu.RLock()
	e.scores.Mu.RLock()
	defer e.scores.Mu.RUnlock()
	defer e.documentStore.Mu.RUnlock()
	defer e.invertedIndex.Mu.RUnlock()

	// The snapshot fields alias the live maps, so the read locks must stay
	// held while the encoder iterates them.
	snap := Snapshot{
		InvertedIndex: e.invertedIndex.Postings,
		Documents:     e.documentStore.Docs,
		DocLengths:    e.invertedIndex.DocLengths,
		TFIDFScores:   e.scores.Scores,
	}
	if err := persistence.SaveGob(e.snapshotPath, snap); err != nil {
		return err
	}
	e.log.Info("index snapshot saved", "path", e.snapshotPath)
	return nil
}

// LoadSnapshot replaces the engine's state with the snapshot at the
// configured path. A missing or structurally invalid snapshot returns a
// SnapshotLoadError; the caller decides whether to abort or continue with
// an empty engine. The store's ingestion order is not part of the snapshot,
// so a loaded engine iterates documents in sorted-ID order.
func (e *Engine) LoadSnapshot() error {
	var snap Snapshot
	if err := persistence.LoadGob(e.snapshotPath, &snap); err != nil {
		return errors.NewSnapshotLoadError(e.snapshotPath, err)
	}

	e.invertedIndex.Mu.Lock()
	e.documentStore.Mu.Lock()
	e.scores.Mu.Lock()
	defer e.scores.Mu.Unlock()
	defer e.documentStore.Mu.Unlock()
	defer e.invertedIndex.Mu.Unlock()

	e.invertedIndex.Postings = snap.InvertedIndex
	if e.invertedIndex.Postings == nil {
		e.invertedIndex.Postings = make(map[string]map[string]int)
	}
	e.invertedIndex.DocLengths = snap.DocLengths
	if e.invertedIndex.DocLengths == nil {
		e.invertedIndex.DocLengths = make(map[string]int)
	}
	e.documentStore.Replace(snap.Documents)
	e.scores.Scores = snap.TFIDFScores
	if e.scores.Scores == nil {
		e.scores.Scores = make(map[string]map[string]float64)
	}

	e.log.Info("index snapshot loaded", "path", e.snapshotPath,
		"documents", e.documentStore.Len(), "terms", len(e.invertedIndex.Postings))
	return nil
}
