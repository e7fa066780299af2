package site

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/uwdocs"
)

// Generator loads the catalog and writes every page of the site.
type Generator struct {
	Site   uwdocs.Site
	Store  uwdocs.CatalogStore
	Writer uwdocs.DocumentWriter

	// Checker, if set, must accept the composed documents before anything
	// is written.
	Checker uwdocs.LinkChecker

	// Sitemap, if set and Site.BaseURL is not empty, adds a sitemap
	// document to the output.
	Sitemap uwdocs.SitemapBuilder

	Logger *slog.Logger
}

// Result summarizes a generation run.
type Result struct {
	Cards     int
	Locations int
	Factions  int
	Written   int
}

// Run generates the site. Every output file is rewritten.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	catalog, err := g.Store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	links := NewLinker(g.Site, catalog)
	docs := NewComposer(g.Site, links).Compose(catalog)

	if g.Checker != nil {
		if err := g.Checker.CheckLinks(docs, links.Resolve); err != nil {
			return nil, err
		}
	}

	if g.Sitemap != nil && g.Site.BaseURL != "" {
		sitemap, err := g.Sitemap.BuildSitemap(g.Site.BaseURL, docs)
		if err != nil {
			return nil, fmt.Errorf("building sitemap: %w", err)
		}
		docs = append(docs, sitemap)
	}

	result := &Result{
		Cards:     len(catalog.Cards),
		Locations: len(catalog.Locations),
		Factions:  len(catalog.Factions),
	}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		logger.Info("writing", "path", doc.Path)
		if err := g.Writer.WriteDocument(ctx, doc); err != nil {
			return result, fmt.Errorf("writing %s: %w", doc.Path, err)
		}
		result.Written++
	}

	return result, nil
}
