// Package bleve provides the in-memory full-text search index backed by Bleve.
package bleve

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/fwojciec/docindex"
)

// Ensure Index implements docindex.SearchIndex at compile time.
var _ docindex.SearchIndex = (*Index)(nil)

// Index is an in-memory Bleve index of pages and their sections.
// Each Index is independent; nothing is shared between instances.
type Index struct {
	analyzer string

	mu    sync.RWMutex
	index bleve.Index

	// sections maps a page URL to the refs of its indexed sections, so that
	// re-adding a page drops the sections of the replaced version.
	sections map[string][]string
}

// Option configures an Index.
type Option func(*Index)

// WithAnalyzer sets the analyzer of the searchable fields.
// Defaults to the standard analyzer (unicode tokens, lowercase, English
// stop words, no stemming).
func WithAnalyzer(name string) Option {
	return func(i *Index) {
		i.analyzer = name
	}
}

// NewIndex creates a new, empty in-memory index.
func NewIndex(opts ...Option) (*Index, error) {
	i := &Index{
		analyzer: standard.Name,
		sections: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(i)
	}

	indexMapping, err := buildIndexMapping(i.analyzer)
	if err != nil {
		return nil, err
	}
	index, err := bleve.NewMemOnly(indexMapping)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	i.index = index
	return i, nil
}

// Add indexes doc under its URL and each of its sections under the section
// ref. Sections carry only their title. Adding a URL again replaces the
// previous page and its sections. Returns EINVALID for a nil document or a
// document without URL.
func (i *Index) Add(ctx context.Context, doc *docindex.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil {
		return docindex.Errorf(docindex.EINVALID, "document required")
	}
	if doc.URL == "" {
		return docindex.Errorf(docindex.EINVALID, "document URL required")
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.index.NewBatch()
	for _, ref := range i.sections[doc.URL] {
		batch.Delete(ref)
	}

	if err := batch.Index(doc.URL, map[string]interface{}{
		FieldText:      doc.Text,
		FieldTitle:     doc.Title,
		FieldComponent: doc.Component,
		FieldVersion:   doc.Version,
		FieldURL:       doc.URL,
	}); err != nil {
		return fmt.Errorf("index document %q: %w", doc.URL, err)
	}

	refs := make([]string, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		ref := section.Ref(doc.URL)
		if ref == doc.URL {
			continue
		}
		refs = append(refs, ref)
		if err := batch.Index(ref, map[string]interface{}{
			FieldTitle: section.Title,
			FieldURL:   doc.URL,
		}); err != nil {
			return fmt.Errorf("index section %q: %w", ref, err)
		}
	}

	if err := i.index.Batch(batch); err != nil {
		return fmt.Errorf("commit batch for %q: %w", doc.URL, err)
	}
	i.sections[doc.URL] = refs
	return nil
}

// Search runs a query-string query and returns all matching entries, best
// match first. The query is lowercased so that wildcard terms, which are not
// analyzed, match the lowercased index terms.
func (i *Index) Search(ctx context.Context, query string) ([]docindex.Hit, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	count, err := i.index.DocCount()
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}
	if count == 0 || strings.TrimSpace(query) == "" {
		return []docindex.Hit{}, nil
	}

	q := bleve.NewQueryStringQuery(strings.ToLower(query))
	if err := q.Validate(); err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid query %q: %v", query, err)
	}

	req := bleve.NewSearchRequestOptions(q, int(count), 0, false)
	req.Fields = []string{FieldURL}

	res, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, docindex.Errorf(docindex.EINVALID, "invalid query %q: %v", query, err)
	}

	hits := make([]docindex.Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		url, _ := h.Fields[FieldURL].(string)
		if url == "" {
			url = h.ID
		}
		hits = append(hits, docindex.Hit{
			Ref:   h.ID,
			URL:   url,
			Score: h.Score,
		})
	}
	return hits, nil
}

// Count returns the number of indexed entries, pages and sections together.
func (i *Index) Count() (int, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	count, err := i.index.DocCount()
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return int(count), nil
}

// Close releases the index.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.index.Close()
}
