package docindex

import "context"

// Page represents a rendered documentation page produced by a site build.
// Pages are read-only for the duration of an index build.
type Page struct {
	Contents []byte
	Src      PageSource
	Pub      PagePublish
}

// PageSource holds the origin of a page within the documentation site.
type PageSource struct {
	Component string `json:"component" yaml:"component"`
	Version   string `json:"version" yaml:"version"`

	// Stem is the file name without extension. Informational only,
	// it is never indexed.
	Stem string `json:"stem" yaml:"stem"`
}

// PagePublish holds where a page is published.
type PagePublish struct {
	// URL is the publish-relative path, e.g. "/component-a/2.0/install.html".
	URL string `json:"url" yaml:"url"`
}

// PageLoader loads the rendered pages of a site.
type PageLoader interface {
	LoadPages(ctx context.Context) ([]*Page, error)
}
