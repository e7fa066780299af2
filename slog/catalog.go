package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uwdocs"
)

// Ensure the decorators implement their interfaces.
var (
	_ uwdocs.CatalogStore   = (*LoggingCatalogStore)(nil)
	_ uwdocs.DocumentWriter = (*LoggingDocumentWriter)(nil)
)

// LoggingCatalogStore wraps a CatalogStore with logging.
type LoggingCatalogStore struct {
	next   uwdocs.CatalogStore
	logger *slog.Logger
}

// NewLoggingCatalogStore creates a new LoggingCatalogStore.
func NewLoggingCatalogStore(next uwdocs.CatalogStore, logger *slog.Logger) *LoggingCatalogStore {
	return &LoggingCatalogStore{next: next, logger: logger}
}

// LoadCatalog delegates to the wrapped store and logs the operation.
func (s *LoggingCatalogStore) LoadCatalog(ctx context.Context) (catalog *uwdocs.Catalog, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if catalog != nil {
			attrs = append(attrs, "cards", len(catalog.Cards))
		}
		s.logger.Debug("load catalog", attrs...)
	}(time.Now())
	return s.next.LoadCatalog(ctx)
}

// SaveCatalog delegates to the wrapped store and logs the operation.
func (s *LoggingCatalogStore) SaveCatalog(ctx context.Context, catalog *uwdocs.Catalog) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save catalog",
			"cards", len(catalog.Cards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveCatalog(ctx, catalog)
}

// LoggingDocumentWriter wraps a DocumentWriter with logging.
type LoggingDocumentWriter struct {
	next   uwdocs.DocumentWriter
	logger *slog.Logger
}

// NewLoggingDocumentWriter creates a new LoggingDocumentWriter.
func NewLoggingDocumentWriter(next uwdocs.DocumentWriter, logger *slog.Logger) *LoggingDocumentWriter {
	return &LoggingDocumentWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the operation.
func (w *LoggingDocumentWriter) WriteDocument(ctx context.Context, doc *uwdocs.Document) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write document",
			"path", doc.Path,
			"bytes", len(doc.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, doc)
}
