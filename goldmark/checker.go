// Package goldmark checks generated markdown using the goldmark parser.
package goldmark

import (
	"strings"

	"github.com/fwojciec/uwdocs"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// maxReported caps how many broken links are listed in the error message.
const maxReported = 5

// Ensure LinkChecker implements uwdocs.LinkChecker at compile time.
var _ uwdocs.LinkChecker = (*LinkChecker)(nil)

// LinkChecker parses each document and verifies its internal links.
type LinkChecker struct {
	md goldmark.Markdown
}

// NewLinkChecker creates a LinkChecker with GFM extensions.
func NewLinkChecker() *LinkChecker {
	return &LinkChecker{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// CheckLinks returns EINTERNAL listing the first broken links if any
// internal link target resolves to a path missing from docs.
func (c *LinkChecker) CheckLinks(docs []*uwdocs.Document, resolve uwdocs.ResolveFunc) error {
	known := make(map[string]bool, len(docs))
	for _, doc := range docs {
		known[doc.Path] = true
	}

	var broken []string
	for _, doc := range docs {
		for _, target := range c.Links(doc.Content) {
			path, ok := resolve(target)
			if !ok || known[path] {
				continue
			}
			broken = append(broken, doc.Path+" -> "+target)
		}
	}

	if len(broken) == 0 {
		return nil
	}
	reported := broken
	if len(reported) > maxReported {
		reported = reported[:maxReported]
	}
	return uwdocs.Errorf(uwdocs.EINTERNAL, "%d broken links: %s", len(broken), strings.Join(reported, ", "))
}

// Links returns the destinations of all links in content, in document
// order. Front matter is skipped; images are not links.
func (c *LinkChecker) Links(content string) []string {
	src := []byte(stripFrontMatter(content))
	root := c.md.Parser().Parse(text.NewReader(src))

	var targets []string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok {
			targets = append(targets, string(link.Destination))
		}
		return ast.WalkContinue, nil
	})
	return targets
}

func stripFrontMatter(content string) string {
	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return content
	}
	if _, body, ok := strings.Cut(rest, "\n---\n"); ok {
		return body
	}
	return content
}
