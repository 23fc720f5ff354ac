package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchIndex_Add(t *testing.T) {
	t.Parallel()

	t.Run("delegates to AddFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *docindex.Document
		idx := &mock.SearchIndex{
			AddFn: func(_ context.Context, doc *docindex.Document) error {
				calledWith = doc
				return nil
			},
		}

		doc := &docindex.Document{URL: "/a.html", Text: "foo"}

		err := idx.Add(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, doc, calledWith)
	})

	t.Run("returns error from AddFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("index error")
		idx := &mock.SearchIndex{
			AddFn: func(_ context.Context, _ *docindex.Document) error {
				return expectedErr
			},
		}

		err := idx.Add(context.Background(), &docindex.Document{URL: "/a.html"})

		assert.Equal(t, expectedErr, err)
	})
}

func TestSearchIndex_Search(t *testing.T) {
	t.Parallel()

	idx := &mock.SearchIndex{
		SearchFn: func(_ context.Context, query string) ([]docindex.Hit, error) {
			return []docindex.Hit{{Ref: "/" + query, URL: "/" + query}}, nil
		},
	}

	hits, err := idx.Search(context.Background(), "foo")

	require.NoError(t, err)
	assert.Equal(t, []docindex.Hit{{Ref: "/foo", URL: "/foo"}}, hits)
}
