// Package fs provides file-based storage for the catalog and the generated
// site.
package fs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/uwdocs"
)

// Ensure Writer implements uwdocs.DocumentWriter at compile time.
var _ uwdocs.DocumentWriter = (*Writer)(nil)

// Writer writes documents as files under a base directory, overwriting
// whatever is there.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes doc.Content to doc.Path below the base directory.
func (w *Writer) WriteDocument(ctx context.Context, doc *uwdocs.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := cleanPath(doc.Path)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(doc.Content), 0644)
}

// cleanPath rejects paths that would escape the base directory.
func cleanPath(p string) (string, error) {
	cleaned := path.Clean(p)
	if path.IsAbs(cleaned) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", uwdocs.Errorf(uwdocs.EINVALID, "document path %q outside output directory", p)
	}
	return cleaned, nil
}
