package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingIndex implements docindex.SearchIndex.
var _ docindex.SearchIndex = (*LoggingIndex)(nil)

// LoggingIndex wraps a SearchIndex with logging of searches and failed adds.
type LoggingIndex struct {
	next   docindex.SearchIndex
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next docindex.SearchIndex, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Add delegates to the wrapped index and logs failures.
func (i *LoggingIndex) Add(ctx context.Context, doc *docindex.Document) error {
	err := i.next.Add(ctx, doc)
	if err != nil {
		var url string
		if doc != nil {
			url = doc.URL
		}
		i.logger.Warn("index add failed",
			"url", url,
			"err", err,
		)
	}
	return err
}

// Search delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Search(ctx context.Context, query string) (hits []docindex.Hit, err error) {
	defer func(begin time.Time) {
		i.logger.Info("search",
			"query", query,
			"hits", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Search(ctx, query)
}

// Count delegates to the wrapped index.
func (i *LoggingIndex) Count() (int, error) {
	return i.next.Count()
}

// Close delegates to the wrapped index.
func (i *LoggingIndex) Close() error {
	return i.next.Close()
}
