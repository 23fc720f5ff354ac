package docindex_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAnchor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Where to begin", "where-to-begin"},
		{"Link Types & Syntax", "link-types-syntax"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"snake_case_name", "snake-case-name"},
		{"Antora 2.0.0", "antora-200"},
		{"Ünïcode Títle", "ünïcode-títle"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docindex.GenerateAnchor(tt.title))
		})
	}
}

func TestAnchors_Next(t *testing.T) {
	t.Parallel()

	t.Run("suffixes duplicate titles", func(t *testing.T) {
		t.Parallel()

		a := docindex.NewAnchors()

		assert.Equal(t, "setup", a.Next("Setup"))
		assert.Equal(t, "setup-1", a.Next("Setup"))
		assert.Equal(t, "setup-2", a.Next("setup"))
	})

	t.Run("avoids reserved anchors", func(t *testing.T) {
		t.Parallel()

		a := docindex.NewAnchors()
		a.Reserve("install")

		assert.Equal(t, "install-1", a.Next("Install"))
	})

	t.Run("uses placeholder for titles without letters", func(t *testing.T) {
		t.Parallel()

		a := docindex.NewAnchors()

		assert.Equal(t, "section", a.Next("!!!"))
		assert.Equal(t, "section-1", a.Next("???"))
	})

	t.Run("reserving twice keeps a single count", func(t *testing.T) {
		t.Parallel()

		a := docindex.NewAnchors()
		a.Reserve("usage")
		a.Reserve("usage")

		assert.Equal(t, "usage-1", a.Next("Usage"))
	})
}

func TestSection_Ref(t *testing.T) {
	t.Parallel()

	t.Run("appends anchor as fragment", func(t *testing.T) {
		t.Parallel()

		s := docindex.Section{Level: 2, Title: "Manage docs as code", Anchor: "manage-docs-as-code"}

		assert.Equal(t, "https://docs.antora.org/antora/1.0/#manage-docs-as-code", s.Ref("https://docs.antora.org/antora/1.0/"))
	})

	t.Run("falls back to page URL without anchor", func(t *testing.T) {
		t.Parallel()

		s := docindex.Section{Level: 3, Title: "!!!"}

		assert.Equal(t, "/a/b.html", s.Ref("/a/b.html"))
	})
}
