package docindex

import (
	"fmt"
	"strings"
)

// FormatHits formats search hits for display, one numbered entry per hit.
// Uses the matched section or page title if available, falls back to the ref.
func FormatHits(hits []Hit, store Store) string {
	if len(hits) == 0 {
		return ""
	}

	var b strings.Builder
	for i, hit := range hits {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n   %s", i+1, hitTitle(hit, store), hit.Ref)
	}
	return b.String()
}

func hitTitle(hit Hit, store Store) string {
	doc, ok := store[hit.URL]
	if !ok {
		return hit.Ref
	}
	if anchor, found := strings.CutPrefix(hit.Ref, hit.URL+"#"); found {
		for _, s := range doc.Sections {
			if s.Anchor == anchor {
				if doc.Title != "" {
					return doc.Title + " > " + s.Title
				}
				return s.Title
			}
		}
	}
	if doc.Title != "" {
		return doc.Title
	}
	return doc.URL
}

// FormatDocuments formats a document listing for display.
// Each entry shows the title (or URL), the component and version, and the URL.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.URL
		}
		parts = append(parts, fmt.Sprintf("%d. %s [%s %s]\n   %s", i+1, title, doc.Component, doc.Version, doc.URL))
	}
	return strings.Join(parts, "\n")
}
