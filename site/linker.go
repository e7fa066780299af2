// Package site composes the markdown pages of the generated site and
// writes them out.
package site

import (
	"path"
	"strings"

	"github.com/fwojciec/uwdocs"
)

// Linker builds link targets and document paths. Both come from the same
// slug table, so every link points at a file the generator writes.
type Linker struct {
	base      string
	cards     map[*uwdocs.Card]string
	locations map[string]string
	factions  map[string]string
}

// NewLinker assigns slugs for every card, location and faction of catalog,
// in catalog order. Colliding slugs are disambiguated by uwdocs.SlugSet.
func NewLinker(site uwdocs.Site, catalog *uwdocs.Catalog) *Linker {
	l := &Linker{
		base:      strings.TrimSuffix(site.BaseURL, "/"),
		cards:     make(map[*uwdocs.Card]string, len(catalog.Cards)),
		locations: make(map[string]string, len(catalog.Locations)),
		factions:  make(map[string]string, len(catalog.Factions)),
	}

	cardSlugs := uwdocs.NewSlugSet("card")
	for _, card := range catalog.Cards {
		l.cards[card] = cardSlugs.Claim(card.Name)
	}
	claimAll(l.locations, uwdocs.NewSlugSet("location"), catalog.Locations)
	claimAll(l.factions, uwdocs.NewSlugSet("faction"), catalog.Factions)

	return l
}

func claimAll(dst map[string]string, slugs *uwdocs.SlugSet, names []string) {
	for _, name := range names {
		if _, ok := dst[name]; ok {
			continue
		}
		dst[name] = slugs.Claim(name)
	}
}

// CardPath returns the document path of card. Cards outside the catalog
// fall back to the plain slug of their name.
func (l *Linker) CardPath(card *uwdocs.Card) string {
	slug, ok := l.cards[card]
	if !ok {
		slug = uwdocs.Slug(card.Name)
	}
	return docPath(uwdocs.KindCards, slug)
}

// LocationPath returns the document path of the named location.
func (l *Linker) LocationPath(name string) string {
	return docPath(uwdocs.KindLocations, lookup(l.locations, name))
}

// FactionPath returns the document path of the named faction.
func (l *Linker) FactionPath(name string) string {
	return docPath(uwdocs.KindFactions, lookup(l.factions, name))
}

func lookup(slugs map[string]string, name string) string {
	if slug, ok := slugs[name]; ok {
		return slug
	}
	return uwdocs.Slug(name)
}

func docPath(kind, slug string) string {
	return path.Join(kind, slug+".md")
}

// URL returns the link target for a document path.
func (l *Linker) URL(docPath string) string {
	return l.base + "/" + docPath
}

// RootURL returns the link target of the site root.
func (l *Linker) RootURL() string {
	return l.base + "/"
}

// CardLink returns a markdown link to card.
func (l *Linker) CardLink(card *uwdocs.Card) string {
	return link(card.Name, l.URL(l.CardPath(card)))
}

// LocationLink returns a markdown link to the named location.
func (l *Linker) LocationLink(name string) string {
	return link(name, l.URL(l.LocationPath(name)))
}

// FactionLink returns a markdown link to the named faction.
func (l *Linker) FactionLink(name string) string {
	return link(name, l.URL(l.FactionPath(name)))
}

// Resolve maps a link target back to a document path. The site root
// resolves to the index.
func (l *Linker) Resolve(target string) (string, bool) {
	rel, ok := strings.CutPrefix(target, l.base+"/")
	if !ok {
		return "", false
	}
	if rel == "" {
		return uwdocs.IndexPath, true
	}
	return rel, true
}

var (
	linkTextEscaper   = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)
	destinationEscape = strings.NewReplacer(`\`, `\\`, `<`, `\<`, `>`, `\>`)
)

func link(text, target string) string {
	return "[" + linkTextEscaper.Replace(text) + "](" + destination(target) + ")"
}

func image(alt, src string) string {
	return "!" + link(alt, src)
}

// destination wraps targets holding spaces, parentheses or angle brackets
// in <...> so they survive as a single link destination.
func destination(target string) string {
	if !strings.ContainsAny(target, " ()<>\\") {
		return target
	}
	return "<" + destinationEscape.Replace(target) + ">"
}
