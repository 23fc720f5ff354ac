package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.SearchIndex = (*SearchIndex)(nil)

// SearchIndex is a mock implementation of docindex.SearchIndex.
type SearchIndex struct {
	AddFn    func(ctx context.Context, doc *docindex.Document) error
	SearchFn func(ctx context.Context, query string) ([]docindex.Hit, error)
	CountFn  func() (int, error)
	CloseFn  func() error
}

func (i *SearchIndex) Add(ctx context.Context, doc *docindex.Document) error {
	return i.AddFn(ctx, doc)
}

func (i *SearchIndex) Search(ctx context.Context, query string) ([]docindex.Hit, error) {
	return i.SearchFn(ctx, query)
}

func (i *SearchIndex) Count() (int, error) {
	return i.CountFn()
}

func (i *SearchIndex) Close() error {
	return i.CloseFn()
}
