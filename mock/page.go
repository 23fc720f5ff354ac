package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.PageLoader = (*PageLoader)(nil)

// PageLoader is a mock implementation of docindex.PageLoader.
type PageLoader struct {
	LoadPagesFn func(ctx context.Context) ([]*docindex.Page, error)
}

func (l *PageLoader) LoadPages(ctx context.Context) ([]*docindex.Page, error) {
	return l.LoadPagesFn(ctx)
}
