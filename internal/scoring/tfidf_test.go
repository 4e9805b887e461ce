package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgcurious/search-engine/index"
	"github.com/pgcurious/search-engine/internal/indexing"
	"github.com/pgcurious/search-engine/store"
)

func buildCorpus(t *testing.T, docs map[string][2]string) (*index.InvertedIndex, *store.DocumentStore) {
	t.Helper()
	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()
	svc, err := indexing.NewService(invIndex, docStore)
	require.NoError(t, err)
	for id, doc := range docs {
		svc.AddDocument(id, doc[0], doc[1], "")
	}
	return invIndex, docStore
}

func TestRecomputeEmptyCorpus(t *testing.T) {
	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()

	table := NewTable()
	table.Recompute(invIndex, docStore)

	assert.Empty(t, table.Scores, "zero documents must leave the table empty")
}

func TestRecomputeIDF(t *testing.T) {
	invIndex, docStore := buildCorpus(t, map[string][2]string{
		"doc1": {"", "apple banana"},
		"doc2": {"", "apple cherry"},
		"doc3": {"", "apple banana cherry"},
	})

	table := NewTable()
	table.Recompute(invIndex, docStore)

	// "apple" appears in every document: idf = ln(3/3) = 0, so every score
	// for it is zero.
	for docID, score := range table.TermScores("apple") {
		assert.Zero(t, score, "apple score for %s", docID)
	}

	// "banana" appears in 2 of 3 documents: idf = ln(3/2).
	idf := math.Log(3.0 / 2.0)
	assert.InDelta(t, (1.0/2.0)*idf, table.TermScores("banana")["doc1"], 1e-12)
	assert.InDelta(t, (1.0/3.0)*idf, table.TermScores("banana")["doc3"], 1e-12)

	// "cherry" also has df=2.
	assert.InDelta(t, (1.0/2.0)*idf, table.TermScores("cherry")["doc2"], 1e-12)
}

func TestRecomputeZeroLengthDocument(t *testing.T) {
	invIndex, docStore := buildCorpus(t, map[string][2]string{
		"doc1": {"", "apple"},
		"doc2": {"", ""}, // zero-length document
	})

	// Force a posting for the empty document to exercise the docLength=0
	// guard directly.
	invIndex.SetPosting("apple", "doc2", 1)

	table := NewTable()
	table.Recompute(invIndex, docStore)

	assert.Zero(t, table.TermScores("apple")["doc2"], "tf must be 0 for zero-length documents")
}

func TestRecomputeReplacesWholesale(t *testing.T) {
	invIndex, docStore := buildCorpus(t, map[string][2]string{
		"doc1": {"", "apple banana"},
	})

	table := NewTable()
	table.Recompute(invIndex, docStore)
	require.Contains(t, table.Scores, "apple")

	// Re-ingest with different content; the old table is replaced, not
	// merged, by the next recompute.
	svc, err := indexing.NewService(invIndex, docStore)
	require.NoError(t, err)
	svc.AddDocument("doc1", "", "cherry date", "")

	table.Recompute(invIndex, docStore)
	assert.NotContains(t, table.Scores, "apple")
	assert.Contains(t, table.Scores, "cherry")
}
