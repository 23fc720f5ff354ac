// Package goquery extracts indexable article content from rendered
// documentation pages using goquery and CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/docindex"
	"golang.org/x/net/html"
)

// Default selectors match the markup of the Antora default UI.
const (
	DefaultContentSelector    = "article.doc"
	DefaultNavigationSelector = `nav, aside.navigation, .nav, .nav-menu, .navigation, [role="navigation"]`
)

// Ensure Extractor implements docindex.Extractor at compile time.
var _ docindex.Extractor = (*Extractor)(nil)

// Extractor extracts the title, text and sections of a page's article.
//
// The article is the first element matching the content selector that is
// not inside a navigation region. Everything under a navigation region is
// skipped, wherever it sits relative to the article.
type Extractor struct {
	contentSelector    string
	navigationSelector string

	content    goquery.Matcher
	navigation goquery.Matcher
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContentSelector sets the selector of the article element.
func WithContentSelector(selector string) Option {
	return func(e *Extractor) {
		e.contentSelector = selector
	}
}

// WithNavigationSelector sets the selector of navigation regions.
func WithNavigationSelector(selector string) Option {
	return func(e *Extractor) {
		e.navigationSelector = selector
	}
}

// NewExtractor creates a new Extractor.
// Returns EINVALID if a configured selector cannot be parsed.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{
		contentSelector:    DefaultContentSelector,
		navigationSelector: DefaultNavigationSelector,
	}
	for _, opt := range opts {
		opt(e)
	}

	content, err := cascadia.Compile(e.contentSelector)
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid content selector %q: %v", e.contentSelector, err)
	}
	navigation, err := cascadia.Compile(e.navigationSelector)
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid navigation selector %q: %v", e.navigationSelector, err)
	}
	e.content = content
	e.navigation = navigation

	return e, nil
}

// Extract parses raw HTML and returns the article content.
// A page without an article yields an empty result.
func (e *Extractor) Extract(rawHTML string) (*docindex.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &docindex.ExtractResult{}

	root := e.contentRoot(doc)
	if root == nil {
		return result, nil
	}

	c := &collector{extractor: e, anchors: docindex.NewAnchors()}
	c.walk(root)

	result.Title = c.title
	result.Text = strings.Join(c.pieces, " ")
	result.Sections = c.sections
	return result, nil
}

// contentRoot returns the first article element outside navigation, or nil.
func (e *Extractor) contentRoot(doc *goquery.Document) *html.Node {
	root := doc.FindMatcher(e.content).FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return !sel.IsMatcher(e.navigation) && sel.ParentsMatcher(e.navigation).Length() == 0
	}).First()
	if root.Length() == 0 {
		return nil
	}
	return root.Nodes[0]
}

// isNavigation reports whether n is the root of a navigation region.
func (e *Extractor) isNavigation(n *html.Node) bool {
	return n.Type == html.ElementNode && e.navigation.Match(n)
}
