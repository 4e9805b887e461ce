package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgcurious/search-engine/index"
	"github.com/pgcurious/search-engine/internal/indexing"
	"github.com/pgcurious/search-engine/internal/scoring"
	"github.com/pgcurious/search-engine/store"
)

type testDoc struct {
	id, title, content, url string
}

// sampleCorpus is the three-document corpus used throughout: doc1 and doc2
// mention "search", doc3 does not.
var sampleCorpus = []testDoc{
	{
		id:    "doc1",
		title: "Introduction to Search Engines",
		content: "Search engines are systems that help users find information on the web. " +
			"They use crawlers to discover pages and indexing to organize content.",
		url: "http://example.com/doc1",
	},
	{
		id:    "doc2",
		title: "Web Crawlers Explained",
		content: "Web crawlers, also known as spiders, systematically browse the web to " +
			"discover and fetch web pages for search engine indexing.",
		url: "http://example.com/doc2",
	},
	{
		id:    "doc3",
		title: "Understanding TF-IDF",
		content: "TF-IDF is a numerical statistic used to reflect how important a word is " +
			"to a document in a collection. It's widely used in information retrieval.",
		url: "http://example.com/doc3",
	},
}

func newTestEngine(t *testing.T, docs []testDoc) *Service {
	t.Helper()
	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()
	indexer, err := indexing.NewService(invIndex, docStore)
	require.NoError(t, err)

	for _, d := range docs {
		indexer.AddDocument(d.id, d.title, d.content, d.url)
	}

	table := scoring.NewTable()
	table.Recompute(invIndex, docStore)
	return NewService(invIndex, docStore, table)
}

func TestSearchRanking(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	resp := svc.Search("search", 10)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, resp.Count, len(resp.Results))
	assert.NotEmpty(t, resp.QueryID)

	// Hand computation: "search" has df=2 over N=3 documents, idf = ln(1.5).
	// doc1: title hit (3x) plus one content hit over 24 weighted tokens.
	// doc2: one content hit over 24 weighted tokens.
	idf := math.Log(3.0 / 2.0)
	wantDoc1 := math.Round((4.0/24.0)*idf*10000) / 10000 // 0.0676
	wantDoc2 := math.Round((1.0/24.0)*idf*10000) / 10000 // 0.0169

	first, second := resp.Results[0], resp.Results[1]
	assert.Equal(t, "doc1", first.DocID)
	assert.InDelta(t, wantDoc1, first.Score, 1e-9)
	assert.InDelta(t, 0.0676, first.Score, 1e-9)
	assert.Equal(t, "Introduction to Search Engines", first.Title)
	assert.Equal(t, "http://example.com/doc1", first.URL)
	assert.Equal(t, []string{"search"}, first.MatchedTerms)

	assert.Equal(t, "doc2", second.DocID)
	assert.InDelta(t, wantDoc2, second.Score, 1e-9)
	assert.InDelta(t, 0.0169, second.Score, 1e-9)
}

func TestSearchScoresNonIncreasing(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	resp := svc.Search("web search engines crawlers", 10)
	require.NotEmpty(t, resp.Results)
	for i := 1; i < len(resp.Results); i++ {
		assert.GreaterOrEqual(t, resp.Results[i-1].Score, resp.Results[i].Score)
	}
}

func TestSearchMatchedTermsInQueryOrder(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	resp := svc.Search("indexing search crawlers", 10)
	require.NotEmpty(t, resp.Results)

	for _, result := range resp.Results {
		if result.DocID == "doc1" {
			assert.Equal(t, []string{"indexing", "search", "crawlers"}, result.MatchedTerms)
		}
	}
}

func TestSearchStopWordQuery(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	for _, query := range []string{"", "the and of", "a to it is", "ab cd"} {
		resp := svc.Search(query, 10)
		assert.Empty(t, resp.Results, "query %q", query)
		assert.Zero(t, resp.Count, "query %q", query)
	}
}

func TestSearchNoMatches(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	resp := svc.Search("xylophone quartet", 10)
	assert.Empty(t, resp.Results)
}

func TestSearchAllZeroScores(t *testing.T) {
	// "shared" appears in every document, so idf=0 and every accumulated
	// score is zero: the result set must be empty.
	svc := newTestEngine(t, []testDoc{
		{id: "a", content: "shared alpha"},
		{id: "b", content: "shared beta"},
	})

	resp := svc.Search("shared", 10)
	assert.Empty(t, resp.Results)
}

func TestSearchTieOrderIsIngestionOrder(t *testing.T) {
	// "first" and "second" get identical scores for "common"; "other" exists
	// only to keep idf positive. Ties must come out in ingestion order.
	docs := []testDoc{
		{id: "first", content: "common word"},
		{id: "second", content: "common word"},
		{id: "other", content: "unrelated filler text"},
	}
	svc := newTestEngine(t, docs)

	resp := svc.Search("common", 10)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "first", resp.Results[0].DocID)
	assert.Equal(t, "second", resp.Results[1].DocID)
	assert.Equal(t, resp.Results[0].Score, resp.Results[1].Score)
}

func TestSearchTopKTruncation(t *testing.T) {
	docs := []testDoc{
		{id: "a", content: "topic alpha alpha alpha"},
		{id: "b", content: "topic beta beta"},
		{id: "c", content: "topic gamma"},
		{id: "d", content: "unrelated filler"},
	}
	svc := newTestEngine(t, docs)

	resp := svc.Search("topic", 2)
	assert.Len(t, resp.Results, 2)
}

func TestSearchPhrase(t *testing.T) {
	docs := []testDoc{
		{
			id:      "doc1",
			title:   "Machine Learning Basics",
			content: "Machine learning is everywhere. We love machine learning.",
			url:     "http://example.com/ml",
		},
		{
			id:      "doc2",
			title:   "Databases",
			content: "Databases store data.",
			url:     "http://example.com/db",
		},
	}
	svc := newTestEngine(t, docs)

	// Two content occurrences plus one title occurrence: 2 + 1*3 = 5.
	resp := svc.SearchPhrase("machine learning", 10)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "doc1", resp.Results[0].DocID)
	assert.Equal(t, 5.0, resp.Results[0].Score)
	assert.Equal(t, []string{"machine learning"}, resp.Results[0].MatchedTerms)
}

func TestSearchPhraseCaseInsensitive(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	resp := svc.SearchPhrase("WEB CRAWLERS", 10)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "doc2", resp.Results[0].DocID)
}

func TestSearchPhraseNoMatch(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	assert.Empty(t, svc.SearchPhrase("no such phrase here", 10).Results)
	assert.Empty(t, svc.SearchPhrase("   ", 10).Results)
}

func TestSuggest(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	// "search" is indexed with df=2 (doc1, doc2); no other indexed term
	// starts with "sear".
	assert.Equal(t, []string{"search"}, svc.Suggest("sear", 5))

	// Prefix matching is case-insensitive on the input.
	assert.Equal(t, []string{"search"}, svc.Suggest("SEAR", 5))

	assert.Empty(t, svc.Suggest("zzz", 5))
}

func TestSuggestOrdering(t *testing.T) {
	// df: "data"=3, "database"=2, "dataset"=1. Ties: "date" and "datum"
	// both df=1, lexicographic order breaks the tie deterministically.
	docs := []testDoc{
		{id: "a", content: "data database dataset"},
		{id: "b", content: "data database date"},
		{id: "c", content: "data datum"},
	}
	svc := newTestEngine(t, docs)

	got := svc.Suggest("dat", 10)
	assert.Equal(t, []string{"data", "database", "dataset", "date", "datum"}, got)

	// maxSuggestions truncates after ordering.
	assert.Equal(t, []string{"data", "database"}, svc.Suggest("dat", 2))
}

func TestStats(t *testing.T) {
	svc := newTestEngine(t, sampleCorpus)

	stats := svc.Stats()
	assert.Equal(t, 3, stats.DocumentCount)
	assert.Greater(t, stats.TermCount, 0)
	// Weighted lengths: doc1=24, doc2=24, doc3=20.
	assert.InDelta(t, (24.0+24.0+20.0)/3.0, stats.AverageDocumentLength, 1e-9)
}

func TestStatsEmpty(t *testing.T) {
	svc := newTestEngine(t, nil)

	stats := svc.Stats()
	assert.Zero(t, stats.DocumentCount)
	assert.Zero(t, stats.TermCount)
	assert.Zero(t, stats.AverageDocumentLength)
}
