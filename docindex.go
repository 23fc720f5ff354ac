// Package docindex builds a client-searchable full-text index from the
// rendered HTML pages of a static documentation site. It extracts the
// article text, title and section headings of every page, keys them by
// the page's canonical URL, and feeds them into a search index that
// supports term, field and wildcard queries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bleve/, sqlite/).
package docindex
