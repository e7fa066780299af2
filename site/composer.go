package site

import (
	"slices"
	"strconv"
	"strings"

	"github.com/fwojciec/uwdocs"
)

// IndexName is the entity name used in the index page title.
const IndexName = "Home"

// Composer renders documents. It never modifies the cards it is given.
type Composer struct {
	site  uwdocs.Site
	links *Linker
}

// NewComposer creates a Composer for site using links for every target.
func NewComposer(site uwdocs.Site, links *Linker) *Composer {
	return &Composer{site: site, links: links}
}

// Compose renders every document of catalog: cards, then locations, then
// factions, then the index.
func (c *Composer) Compose(catalog *uwdocs.Catalog) []*uwdocs.Document {
	docs := make([]*uwdocs.Document, 0, len(catalog.Cards)+len(catalog.Locations)+len(catalog.Factions)+1)
	for _, card := range catalog.Cards {
		docs = append(docs, c.CardPage(card))
	}
	for _, location := range catalog.Locations {
		docs = append(docs, c.LocationPage(location, catalog.Cards))
	}
	for _, faction := range catalog.Factions {
		docs = append(docs, c.FactionPage(faction, catalog.Cards))
	}
	return append(docs, c.IndexPage(catalog.Locations))
}

// CardPage renders the page of one card.
func (c *Composer) CardPage(card *uwdocs.Card) *uwdocs.Document {
	blocks := []string{image(card.Name, card.Image)}
	if card.Text != "" {
		blocks = append(blocks, card.Text)
	}
	blocks = append(blocks,
		"Type: "+string(card.Type),
		"Faction: "+c.links.FactionLink(card.Faction),
		"Found in: "+c.links.LocationLink(card.Location),
		"Card number: "+strconv.Itoa(card.Number),
	)
	return c.document(c.links.CardPath(card), card.Name, blocks)
}

// LocationPage renders the page listing the cards found in location.
func (c *Composer) LocationPage(location string, cards []*uwdocs.Card) *uwdocs.Document {
	in := filter(cards, func(card *uwdocs.Card) bool { return card.Location == location })
	return c.document(c.links.LocationPath(location), location, c.groupBlocks(location, in))
}

// FactionPage renders the page listing the cards of faction.
func (c *Composer) FactionPage(faction string, cards []*uwdocs.Card) *uwdocs.Document {
	in := filter(cards, func(card *uwdocs.Card) bool { return card.Faction == faction })
	return c.document(c.links.FactionPath(faction), faction, c.groupBlocks(faction, in))
}

// IndexPage renders the landing page linking every location.
func (c *Composer) IndexPage(locations []string) *uwdocs.Document {
	items := make([]string, 0, len(locations))
	for _, location := range locations {
		items = append(items, "- "+c.links.LocationLink(location))
	}

	blocks := []string{"# " + c.site.Title, "## Browse by set"}
	if len(items) > 0 {
		blocks = append(blocks, strings.Join(items, "\n"))
	}
	return c.document(uwdocs.IndexPath, IndexName, blocks)
}

// groupBlocks renders a heading and one section per card type, each listing
// its cards sorted by name.
func (c *Composer) groupBlocks(heading string, cards []*uwdocs.Card) []string {
	blocks := []string{"# " + heading}
	for _, typ := range uwdocs.SectionTypes {
		section := "## " + string(typ) + "s"

		matching := filter(cards, func(card *uwdocs.Card) bool { return card.Type == typ })
		slices.SortStableFunc(matching, func(a, b *uwdocs.Card) int {
			return strings.Compare(a.Name, b.Name)
		})

		if len(matching) > 0 {
			items := make([]string, 0, len(matching))
			for _, card := range matching {
				items = append(items, "- "+c.links.CardLink(card))
			}
			section += "\n\n" + strings.Join(items, "\n")
		}
		blocks = append(blocks, section)
	}
	return blocks
}

// document wraps blocks with front matter and the site header.
func (c *Composer) document(path, name string, blocks []string) *uwdocs.Document {
	title := name + " - " + c.site.Title

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(strconv.Quote(title))
	b.WriteString("\n---\n\n")
	b.WriteString(link(c.site.Title, c.links.RootURL()))
	for _, block := range blocks {
		b.WriteString("\n\n")
		b.WriteString(block)
	}
	b.WriteString("\n")

	return &uwdocs.Document{
		Path:    path,
		Title:   title,
		Content: b.String(),
	}
}

// filter returns a new slice holding the cards that match.
func filter(cards []*uwdocs.Card, match func(*uwdocs.Card) bool) []*uwdocs.Card {
	var out []*uwdocs.Card
	for _, card := range cards {
		if match(card) {
			out = append(out, card)
		}
	}
	return out
}
