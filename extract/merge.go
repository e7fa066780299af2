package extract

import "github.com/fwojciec/uwdocs"

// Merge sets each card's rules text from texts, keyed by card number.
// Cards without an entry end up with empty text.
func Merge(texts map[int]string, cards []*uwdocs.Card) {
	for _, card := range cards {
		card.Text = texts[card.Number]
	}
}
