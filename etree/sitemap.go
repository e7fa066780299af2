// Package etree renders XML output for the generated site.
package etree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/uwdocs"
)

// SitemapPath is the path of the generated sitemap.
const SitemapPath = "sitemap.xml"

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Ensure SitemapBuilder implements uwdocs.SitemapBuilder at compile time.
var _ uwdocs.SitemapBuilder = (*SitemapBuilder)(nil)

// SitemapBuilder renders a <urlset> sitemap of the markdown documents.
type SitemapBuilder struct{}

// NewSitemapBuilder creates a new SitemapBuilder.
func NewSitemapBuilder() *SitemapBuilder {
	return &SitemapBuilder{}
}

// BuildSitemap lists every markdown document under baseURL, in order.
func (b *SitemapBuilder) BuildSitemap(baseURL string, docs []*uwdocs.Document) (*uwdocs.Document, error) {
	if baseURL == "" {
		return nil, uwdocs.Errorf(uwdocs.EINVALID, "sitemap requires a base URL")
	}
	base := strings.TrimSuffix(baseURL, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNS)

	for _, d := range docs {
		if !strings.HasSuffix(d.Path, ".md") {
			continue
		}
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(base + "/" + d.Path)
	}

	doc.Indent(2)
	content, err := doc.WriteToString()
	if err != nil {
		return nil, fmt.Errorf("encoding sitemap: %w", err)
	}

	return &uwdocs.Document{
		Path:    SitemapPath,
		Content: content,
	}, nil
}
