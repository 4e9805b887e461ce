package model

// Document is the stored form of an indexed page. Content holds only a
// preview (the first 500 characters of the original text); the full body is
// tokenized at ingestion time and never kept.
type Document struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Page is what the crawler hands to the indexing layer: the raw text of a
// fetched page plus the outgoing links discovered on it. Links only matter
// to the crawl frontier, the index ignores them.
type Page struct {
	URL     string
	Title   string
	Content string
	Links   []string
}
