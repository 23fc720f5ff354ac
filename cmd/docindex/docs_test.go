package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docindex"
	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	build := &docindex.Build{
		ID:            "3f1c6a2e-1b7d-4c8e-9a51-2d6f0e8b4a17",
		DocumentCount: 2,
		CreatedAt:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("lists exported documents", func(t *testing.T) {
		t.Parallel()

		var got docindex.DocumentFilter
		documents := &mock.DocumentService{
			FindLatestBuildFn: func(context.Context) (*docindex.Build, error) {
				return build, nil
			},
			FindDocumentsFn: func(_ context.Context, filter docindex.DocumentFilter) ([]*docindex.Document, error) {
				got = filter
				return []*docindex.Document{
					{URL: "/component-a/2.0/install-foo.html", Title: "Install Foo", Component: "component-a", Version: "2.0"},
					{URL: "/component-b/1.0/index.html", Component: "component-b", Version: "1.0"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
		}

		cmd := &main.DocsCmd{DB: "site.db"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Nil(t, got.Component)
		assert.Nil(t, got.Version)
		assert.Contains(t, stdout.String(), "Build 3f1c6a2e-1b7d-4c8e-9a51-2d6f0e8b4a17, 2 documents, created 2026-05-01T12:00:00Z")
		assert.Contains(t, stdout.String(), "1. Install Foo [component-a 2.0]\n   /component-a/2.0/install-foo.html")
		assert.Contains(t, stdout.String(), "2. /component-b/1.0/index.html [component-b 1.0]")
	})

	t.Run("passes component and version filters", func(t *testing.T) {
		t.Parallel()

		var got docindex.DocumentFilter
		documents := &mock.DocumentService{
			FindLatestBuildFn: func(context.Context) (*docindex.Build, error) {
				return build, nil
			},
			FindDocumentsFn: func(_ context.Context, filter docindex.DocumentFilter) ([]*docindex.Document, error) {
				got = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: documents,
		}

		cmd := &main.DocsCmd{DB: "site.db", Component: "component-a", Version: "2.0", Limit: 5, Offset: 10}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Component)
		require.NotNil(t, got.Version)
		assert.Equal(t, "component-a", *got.Component)
		assert.Equal(t, "2.0", *got.Version)
		assert.Equal(t, 5, got.Limit)
		assert.Equal(t, 10, got.Offset)
		assert.Contains(t, stdout.String(), "No matching documents")
	})

	t.Run("returns ENOTFOUND when nothing was exported", func(t *testing.T) {
		t.Parallel()

		documents := &mock.DocumentService{
			FindLatestBuildFn: func(context.Context) (*docindex.Build, error) {
				return nil, docindex.Errorf(docindex.ENOTFOUND, "no build exported")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Documents: documents,
		}

		cmd := &main.DocsCmd{DB: "empty.db"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docindex.ENOTFOUND, docindex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "docindex build <dir> --db empty.db")
	})
}
