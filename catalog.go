package uwdocs

import "context"

// Catalog holds every scraped card plus the location and faction names
// derived from them.
type Catalog struct {
	Cards     []*Card  `json:"cards"`
	Locations []string `json:"locations"`
	Factions  []string `json:"factions"`
}

// NewCatalog builds a catalog from cards, deriving locations and factions
// in order of first occurrence.
func NewCatalog(cards []*Card) *Catalog {
	return &Catalog{
		Cards:     cards,
		Locations: distinct(cards, func(c *Card) string { return c.Location }),
		Factions:  distinct(cards, func(c *Card) string { return c.Faction }),
	}
}

func distinct(cards []*Card, key func(*Card) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, c := range cards {
		v := key(c)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// Validate returns an error if card numbers repeat or if the location and
// faction sets are not exactly the values used by the cards.
func (c *Catalog) Validate() error {
	numbers := make(map[int]bool, len(c.Cards))
	for _, card := range c.Cards {
		if err := card.Validate(); err != nil {
			return err
		}
		if numbers[card.Number] {
			return Errorf(ECONFLICT, "duplicate card number %d", card.Number)
		}
		numbers[card.Number] = true
	}

	if err := sameSet("location", c.Locations, c.Cards, func(c *Card) string { return c.Location }); err != nil {
		return err
	}
	return sameSet("faction", c.Factions, c.Cards, func(c *Card) string { return c.Faction })
}

func sameSet(kind string, names []string, cards []*Card, key func(*Card) string) error {
	want := make(map[string]bool)
	for _, card := range cards {
		want[key(card)] = true
	}

	got := make(map[string]bool, len(names))
	for _, name := range names {
		if got[name] {
			return Errorf(ECONFLICT, "duplicate %s %q", kind, name)
		}
		if !want[name] {
			return Errorf(EINVALID, "%s %q has no cards", kind, name)
		}
		got[name] = true
	}
	for name := range want {
		if !got[name] {
			return Errorf(EINVALID, "%s %q missing from %s list", kind, name, kind)
		}
	}
	return nil
}

// CatalogStore persists a catalog between the extract and generate runs.
type CatalogStore interface {
	// LoadCatalog reads the catalog back.
	// Returns ENOTFOUND if nothing has been saved yet.
	LoadCatalog(ctx context.Context) (*Catalog, error)

	// SaveCatalog replaces any previously saved catalog.
	SaveCatalog(ctx context.Context, catalog *Catalog) error
}
