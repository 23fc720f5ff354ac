package docindex

// ExtractResult holds the indexable content extracted from an HTML page.
type ExtractResult struct {
	// Title is the text of the first top-level heading of the article.
	Title string

	// Text is the paragraph-level text of the article, whitespace collapsed.
	// Navigation regions have been removed.
	Text string

	// Sections are the sub-headings of the article in document order.
	Sections []Section
}

// Extractor extracts indexable content from rendered HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the article content.
	// Pages without an article yield an empty result, not an error.
	Extract(html string) (*ExtractResult, error)
}
