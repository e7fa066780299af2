package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/uwdocs"
	"github.com/fwojciec/uwdocs/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ uwdocs.DocumentWriter = &fs.Writer{}
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes content to namespaced path", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		err := w.WriteDocument(context.Background(), &uwdocs.Document{
			Path:    "cards/sidestep.md",
			Content: "---\ntitle: \"Sidestep - Site\"\n---\n",
		})

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(baseDir, "cards", "sidestep.md"))
		require.NoError(t, err)
		assert.Equal(t, "---\ntitle: \"Sidestep - Site\"\n---\n", string(content))
	})

	t.Run("writes bare index at root", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		err := w.WriteDocument(context.Background(), &uwdocs.Document{Path: "index.md", Content: "# Home"})

		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(baseDir, "index.md"))
		require.NoError(t, err)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)
		ctx := context.Background()

		require.NoError(t, w.WriteDocument(ctx, &uwdocs.Document{Path: "factions/f1.md", Content: "old content that is longer"}))
		require.NoError(t, w.WriteDocument(ctx, &uwdocs.Document{Path: "factions/f1.md", Content: "new"}))

		content, err := os.ReadFile(filepath.Join(baseDir, "factions", "f1.md"))
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("rejects paths escaping the base directory", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		for _, p := range []string{"../outside.md", "/etc/passwd", "cards/../../x.md"} {
			err := w.WriteDocument(context.Background(), &uwdocs.Document{Path: p, Content: "x"})

			require.Error(t, err, p)
			assert.Equal(t, uwdocs.EINVALID, uwdocs.ErrorCode(err), p)
		}
	})

	t.Run("validates document", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteDocument(context.Background(), &uwdocs.Document{Content: "x"})

		require.Error(t, err)
		assert.Equal(t, uwdocs.EINVALID, uwdocs.ErrorCode(err))
	})

	t.Run("unwritable output directory", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		blocker := filepath.Join(baseDir, "cards")
		require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0644))
		w := fs.NewWriter(baseDir)

		err := w.WriteDocument(context.Background(), &uwdocs.Document{Path: "cards/a.md", Content: "x"})

		require.Error(t, err)
	})
}
