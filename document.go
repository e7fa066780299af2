package uwdocs

import "context"

// Document represents one generated markdown page.
type Document struct {
	// Path is the slash-separated file name relative to the output root,
	// namespaced by kind: "cards/sidestep.md", "locations/shadespire.md",
	// "index.md".
	Path string

	// Title is the front matter title, "{Entity} - {Site Title}".
	Title string

	// Content is the full file content including front matter.
	Content string
}

// Document kinds, used as the first path segment.
const (
	KindCards     = "cards"
	KindLocations = "locations"
	KindFactions  = "factions"
)

// IndexPath is the path of the index document.
const IndexPath = "index.md"

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	return nil
}

// DocumentWriter persists generated documents, overwriting existing files.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) error
}

// Site describes the generated site. It is passed explicitly to everything
// that renders links or headers.
type Site struct {
	// Title appears in every page header and front matter title.
	Title string `yaml:"title"`

	// BaseURL is prefixed to every link target. Empty means root-relative
	// links ("/cards/sidestep.md").
	BaseURL string `yaml:"base_url"`
}

// ResolveFunc maps a link target to the path of the document it points at.
// It reports false for targets outside the generated site.
type ResolveFunc func(target string) (path string, ok bool)

// LinkChecker verifies generated documents before they are written.
type LinkChecker interface {
	// CheckLinks returns EINTERNAL if any internal link resolves to a path
	// that is not among docs.
	CheckLinks(docs []*Document, resolve ResolveFunc) error
}

// SitemapBuilder renders a sitemap document listing docs under baseURL.
type SitemapBuilder interface {
	BuildSitemap(baseURL string, docs []*Document) (*Document, error)
}
