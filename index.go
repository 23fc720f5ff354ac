package docindex

import (
	"context"
	"sort"
)

// Hit is a single search result.
type Hit struct {
	// Ref is the key of the matching entry: the page URL, or the page URL
	// with a "#anchor" fragment when a section heading matched.
	Ref string `json:"ref"`

	// URL is the resolved URL of the page the entry belongs to.
	URL string `json:"url"`

	Score float64 `json:"score"`
}

// SearchIndex is a full-text index over documents.
//
// Queries support bare terms, prefix ("term*") and infix ("*term*")
// wildcards, and field qualifiers ("version:2.0"). The version field is only
// matched when qualified. A query matching nothing returns an empty slice.
type SearchIndex interface {
	// Add registers the searchable fields of doc under its URL, and each of
	// its sections under the section's ref.
	Add(ctx context.Context, doc *Document) error

	// Search returns the entries matching query, best match first.
	// Returns EINVALID if the query cannot be parsed.
	Search(ctx context.Context, query string) ([]Hit, error)

	// Count returns the number of indexed entries.
	Count() (int, error)

	Close() error
}

// Store maps resolved page URLs to their documents.
type Store map[string]*Document

// URLs returns the store keys in lexical order.
func (s Store) URLs() []string {
	urls := make([]string, 0, len(s))
	for url := range s {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

// Documents returns the stored documents ordered by URL.
func (s Store) Documents() []*Document {
	urls := s.URLs()
	docs := make([]*Document, 0, len(urls))
	for _, url := range urls {
		docs = append(docs, s[url])
	}
	return docs
}

// SiteIndex is the result of an index build: the document store and the
// search index over it. Each build owns its own instances.
type SiteIndex struct {
	Store Store
	Index SearchIndex
}

// Search runs query against the index. Convenience for callers holding only
// the build result.
func (si *SiteIndex) Search(ctx context.Context, query string) ([]Hit, error) {
	return si.Index.Search(ctx, query)
}

// Close releases the search index.
func (si *SiteIndex) Close() error {
	if si.Index == nil {
		return nil
	}
	return si.Index.Close()
}
