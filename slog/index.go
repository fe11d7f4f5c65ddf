// Package slog provides logging decorators for voxdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwielgus/voxdoc"
)

// Ensure LoggingIndex implements voxdoc.Index.
var _ voxdoc.Index = (*LoggingIndex)(nil)

// LoggingIndex wraps an Index with operation logging.
type LoggingIndex struct {
	next   voxdoc.Index
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next voxdoc.Index, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Add delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Add(ctx context.Context, chunks []*voxdoc.Chunk) (err error) {
	defer func(begin time.Time) {
		i.logger.Debug("index add",
			"chunks", len(chunks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Add(ctx, chunks)
}

// Search delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Search(ctx context.Context, query string, opts voxdoc.SearchOptions) (results []voxdoc.SearchResult, err error) {
	defer func(begin time.Time) {
		i.logger.Debug("index search",
			"query", query,
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Search(ctx, query, opts)
}

// Count delegates to the wrapped index.
func (i *LoggingIndex) Count(ctx context.Context) (int, error) {
	return i.next.Count(ctx)
}

// DeleteDocument delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) DeleteDocument(ctx context.Context, documentID string) (err error) {
	defer func(begin time.Time) {
		i.logger.Debug("index delete document",
			"documentId", documentID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.DeleteDocument(ctx, documentID)
}
