package docindex_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestFormatHits(t *testing.T) {
	t.Parallel()

	store := docindex.Store{
		"https://docs.antora.org/antora/1.0/": {
			URL:   "https://docs.antora.org/antora/1.0/",
			Title: "Antora Documentation",
			Sections: []docindex.Section{
				{Level: 3, Title: "Where to begin", Anchor: "where-to-begin"},
			},
		},
		"/untitled.html": {URL: "/untitled.html"},
	}

	t.Run("formats page hit with title", func(t *testing.T) {
		t.Parallel()

		hits := []docindex.Hit{{Ref: "https://docs.antora.org/antora/1.0/", URL: "https://docs.antora.org/antora/1.0/"}}

		result := docindex.FormatHits(hits, store)

		assert.Equal(t, "1. Antora Documentation\n   https://docs.antora.org/antora/1.0/", result)
	})

	t.Run("formats section hit with page and section title", func(t *testing.T) {
		t.Parallel()

		hits := []docindex.Hit{{
			Ref: "https://docs.antora.org/antora/1.0/#where-to-begin",
			URL: "https://docs.antora.org/antora/1.0/",
		}}

		result := docindex.FormatHits(hits, store)

		assert.Equal(t, "1. Antora Documentation > Where to begin\n   https://docs.antora.org/antora/1.0/#where-to-begin", result)
	})

	t.Run("uses URL when title is empty", func(t *testing.T) {
		t.Parallel()

		hits := []docindex.Hit{{Ref: "/untitled.html", URL: "/untitled.html"}}

		assert.Equal(t, "1. /untitled.html\n   /untitled.html", docindex.FormatHits(hits, store))
	})

	t.Run("uses ref when page is not in store", func(t *testing.T) {
		t.Parallel()

		hits := []docindex.Hit{{Ref: "/gone.html", URL: "/gone.html"}}

		assert.Equal(t, "1. /gone.html\n   /gone.html", docindex.FormatHits(hits, store))
	})

	t.Run("numbers multiple hits", func(t *testing.T) {
		t.Parallel()

		hits := []docindex.Hit{
			{Ref: "/untitled.html", URL: "/untitled.html"},
			{Ref: "https://docs.antora.org/antora/1.0/", URL: "https://docs.antora.org/antora/1.0/"},
		}

		result := docindex.FormatHits(hits, store)

		assert.Contains(t, result, "1. /untitled.html")
		assert.Contains(t, result, "\n2. Antora Documentation")
	})

	t.Run("returns empty string for no hits", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docindex.FormatHits(nil, store))
	})
}

func TestFormatDocuments(t *testing.T) {
	t.Parallel()

	t.Run("formats documents with component and version", func(t *testing.T) {
		t.Parallel()

		docs := []*docindex.Document{
			{URL: "/hello/1.0/", Title: "Hello", Component: "hello", Version: "1.0"},
			{URL: "/hello/1.0/other.html", Component: "hello", Version: "1.0"},
		}

		expected := "1. Hello [hello 1.0]\n   /hello/1.0/\n2. /hello/1.0/other.html [hello 1.0]\n   /hello/1.0/other.html"
		assert.Equal(t, expected, docindex.FormatDocuments(docs))
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docindex.FormatDocuments(nil))
	})
}
