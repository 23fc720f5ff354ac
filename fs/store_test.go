package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFile_Write(t *testing.T) {
	t.Parallel()

	t.Run("round trips documents keyed by URL", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "search-store.json")
		store := docindex.Store{
			"/antora/1.0/index.html": {
				URL:       "/antora/1.0/index.html",
				Title:     "Antora Documentation",
				Text:      "The Static Site Generator for Tech Writers",
				Component: "antora",
				Version:   "1.0",
				Sections:  []docindex.Section{{Level: 2, Title: "Manage docs as code", Anchor: "manage-docs-as-code"}},
			},
		}

		require.NoError(t, fs.NewStoreFile(path).Write(store))

		got, err := fs.NewStoreFile(path).Read()
		require.NoError(t, err)
		assert.Equal(t, store, got)

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
	})

	t.Run("identical stores produce identical files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := docindex.Store{
			"/b.html": {URL: "/b.html", Title: "B"},
			"/a.html": {URL: "/a.html", Title: "A"},
		}

		first := filepath.Join(dir, "first.json")
		second := filepath.Join(dir, "second.json")
		require.NoError(t, fs.NewStoreFile(first).Write(store))
		require.NoError(t, fs.NewStoreFile(second).Write(store))

		a, err := os.ReadFile(first)
		require.NoError(t, err)
		b, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.Less(t, strings.Index(string(a), "/a.html"), strings.Index(string(a), "/b.html"))
	})

	t.Run("replaces an existing file and creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "store.json")
		file := fs.NewStoreFile(path)

		require.NoError(t, file.Write(docindex.Store{"/old.html": {URL: "/old.html"}}))
		require.NoError(t, file.Write(docindex.Store{"/new.html": {URL: "/new.html"}}))

		got, err := file.Read()
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Contains(t, got, "/new.html")
	})

	t.Run("writes empty object for nil store", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "store.json")
		require.NoError(t, fs.NewStoreFile(path).Write(nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))
	})
}

func TestStoreFile_Read(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewStoreFile(filepath.Join(t.TempDir(), "missing.json")).Read()

		require.Error(t, err)
		assert.Equal(t, docindex.ENOTFOUND, docindex.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "store.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		_, err := fs.NewStoreFile(path).Read()

		require.Error(t, err)
		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})
}
