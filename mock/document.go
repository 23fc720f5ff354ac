package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docindex.DocumentService.
type DocumentService struct {
	ReplaceDocumentsFn  func(ctx context.Context, docs []*docindex.Document) (*docindex.Build, error)
	FindLatestBuildFn   func(ctx context.Context) (*docindex.Build, error)
	FindDocumentByURLFn func(ctx context.Context, url string) (*docindex.Document, error)
	FindDocumentsFn     func(ctx context.Context, filter docindex.DocumentFilter) ([]*docindex.Document, error)
}

func (s *DocumentService) ReplaceDocuments(ctx context.Context, docs []*docindex.Document) (*docindex.Build, error) {
	return s.ReplaceDocumentsFn(ctx, docs)
}

func (s *DocumentService) FindLatestBuild(ctx context.Context) (*docindex.Build, error) {
	return s.FindLatestBuildFn(ctx)
}

func (s *DocumentService) FindDocumentByURL(ctx context.Context, url string) (*docindex.Document, error) {
	return s.FindDocumentByURLFn(ctx, url)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter docindex.DocumentFilter) ([]*docindex.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}
