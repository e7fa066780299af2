package mock

import (
	"context"

	"github.com/fwojciec/uwdocs"
)

var _ uwdocs.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of uwdocs.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *uwdocs.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *uwdocs.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}
