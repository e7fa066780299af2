package uwdocs

import "context"

// CardType is the kind of a card. Only Ploy, Upgrade and Objective are
// grouped into sections; other values are kept as scraped.
type CardType string

// CardType constants used for section grouping.
const (
	Ploy      CardType = "Ploy"
	Upgrade   CardType = "Upgrade"
	Objective CardType = "Objective"
)

// SectionTypes lists the card types that get a section on location and
// faction pages, in display order.
var SectionTypes = []CardType{Ploy, Upgrade, Objective}

// Card represents one physical card in the catalog.
type Card struct {
	Name     string   `json:"name"`
	Number   int      `json:"number"`
	Faction  string   `json:"faction"`
	Type     CardType `json:"type"`
	Location string   `json:"location"`
	Image    string   `json:"image"`
	Text     string   `json:"text,omitempty"` // Sanitized rules text
}

// Validate returns an error if the card contains invalid fields.
func (c *Card) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "card %d: name required", c.Number)
	}
	return nil
}

// CardListPage is one page of the paginated card list.
type CardListPage struct {
	Cards   []*Card
	Page    int
	MaxPage int

	// Next is the page to request after this one, or 0 on the last page.
	Next int
}

// NextPage returns the page that follows page when the site reports maxPage
// pages in total, or 0 if page is the last one.
func NextPage(page, maxPage int) int {
	if page >= maxPage {
		return 0
	}
	return page + 1
}

// RulesTextSource retrieves sanitized rules text keyed by card number.
type RulesTextSource interface {
	FetchRulesText(ctx context.Context) (map[int]string, error)
}

// CardListSource retrieves the paginated card list. Rows come back without
// rules text. Pages are numbered from 1 and must be requested in order.
type CardListSource interface {
	FetchCardListPage(ctx context.Context, page int) (*CardListPage, error)
}
