package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/uwdocs"
	"github.com/fwojciec/uwdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ uwdocs.DocumentWriter = &mock.DocumentWriter{}
}

func TestDocumentWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteDocumentFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *uwdocs.Document
		w := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, doc *uwdocs.Document) error {
				calledWith = doc
				return nil
			},
		}

		doc := &uwdocs.Document{
			Path:    "cards/sidestep.md",
			Title:   "Sidestep - Companion",
			Content: "content",
		}

		err := w.WriteDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, doc, calledWith)
	})
}
