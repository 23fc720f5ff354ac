// Package indexer assembles a site index from rendered pages. It
// coordinates extraction, URL resolution, document building, and
// registration of every document with the store and the search index.
package indexer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/docindex"
	"golang.org/x/sync/errgroup"
)

// Indexer builds site indexes.
type Indexer struct {
	Extractor docindex.Extractor

	// NewIndex creates the search index of a build. It is called once per
	// Generate so that builds never share index state.
	NewIndex func() (docindex.SearchIndex, error)

	// Logger receives diagnostics about degraded pages and URL collisions.
	// Nil discards them.
	Logger *slog.Logger

	// Concurrency is the number of pages extracted in parallel.
	// Values below 2 extract sequentially.
	Concurrency int
}

// Generate builds the store and search index for pages.
//
// Pages are registered in input order, so when two pages resolve to the same
// URL the later one wins. A page whose contents cannot be extracted still
// yields a document, with empty title and text. Errors are returned only
// when the search index itself fails or ctx is cancelled.
func (ix *Indexer) Generate(ctx context.Context, playbook *docindex.Playbook, pages []*docindex.Page) (*docindex.SiteIndex, error) {
	logger := ix.logger()

	index, err := ix.NewIndex()
	if err != nil {
		return nil, fmt.Errorf("create search index: %w", err)
	}

	results, err := ix.extractAll(ctx, pages)
	if err != nil {
		_ = index.Close()
		return nil, err
	}

	var siteURL string
	if playbook != nil {
		siteURL = playbook.Site.URL
	}

	store := make(docindex.Store, len(pages))
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			_ = index.Close()
			return nil, err
		}
		if page == nil {
			logger.Warn("skipping nil page", "position", i)
			continue
		}

		url := docindex.ResolveURL(siteURL, page.Pub.URL)
		doc := docindex.BuildDocument(page, url, results[i])

		if _, ok := store[url]; ok {
			logger.Warn("duplicate page URL, keeping last", "url", url, "stem", page.Src.Stem)
		}
		store[url] = doc

		if err := index.Add(ctx, doc); err != nil {
			if docindex.ErrorCode(err) == docindex.EINVALID {
				logger.Warn("page not searchable", "url", url, "stem", page.Src.Stem, "err", err)
				continue
			}
			_ = index.Close()
			return nil, fmt.Errorf("index %q: %w", url, err)
		}
	}

	return &docindex.SiteIndex{Store: store, Index: index}, nil
}

// extractAll extracts every page, in parallel when configured. The result
// at position i belongs to pages[i].
func (ix *Indexer) extractAll(ctx context.Context, pages []*docindex.Page) ([]*docindex.ExtractResult, error) {
	results := make([]*docindex.ExtractResult, len(pages))

	if ix.Concurrency < 2 {
		for i, page := range pages {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = ix.extract(page)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.Concurrency)
	for i, page := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = ix.extract(page)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// extract runs the extractor on a single page. Failures degrade to an empty
// result and a warning.
func (ix *Indexer) extract(page *docindex.Page) *docindex.ExtractResult {
	if page == nil {
		return &docindex.ExtractResult{}
	}

	result, err := ix.Extractor.Extract(string(page.Contents))
	if err != nil || result == nil {
		ix.logger().Warn("extraction failed, indexing page without content",
			"url", page.Pub.URL,
			"stem", page.Src.Stem,
			"err", err,
		)
		return &docindex.ExtractResult{}
	}
	return result
}

func (ix *Indexer) logger() *slog.Logger {
	if ix.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return ix.Logger
}
