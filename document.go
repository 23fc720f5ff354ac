package docindex

import (
	"context"
	"time"
)

// Document is the indexable record derived from a single page.
type Document struct {
	URL       string    `json:"url"`
	Title     string    `json:"title,omitempty"`
	Text      string    `json:"text"`
	Component string    `json:"component"`
	Version   string    `json:"version"`
	Sections  []Section `json:"sections,omitempty"`
}

// BuildDocument combines page metadata with the extraction result into a
// Document keyed by url. A nil page or result propagates as empty fields.
func BuildDocument(page *Page, url string, result *ExtractResult) *Document {
	doc := &Document{URL: url}
	if page != nil {
		doc.Component = page.Src.Component
		doc.Version = page.Src.Version
	}
	if result != nil {
		doc.Title = result.Title
		doc.Text = result.Text
		doc.Sections = result.Sections
	}
	return doc
}

// Build describes one export of a built store.
type Build struct {
	ID            string    `json:"id"`
	DocumentCount int       `json:"documentCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DocumentService represents a service for persisting built documents.
type DocumentService interface {
	// ReplaceDocuments atomically replaces all stored documents with docs
	// and records the export as a new build.
	ReplaceDocuments(ctx context.Context, docs []*Document) (*Build, error)

	// FindLatestBuild retrieves the build that produced the stored documents.
	// Returns ENOTFOUND if nothing has been exported yet.
	FindLatestBuild(ctx context.Context) (*Build, error)

	// FindDocumentByURL retrieves a document by its resolved URL.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByURL(ctx context.Context, url string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, ordered by URL.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	Component *string `json:"component"`
	Version   *string `json:"version"`
	URL       *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
