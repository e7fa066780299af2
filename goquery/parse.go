// Package goquery extracts card data from rendered site HTML using CSS
// selectors.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/uwdocs"
)

// ParseRulesTable reads the rules text table and returns the sanitized
// text of every row keyed by card number.
func ParseRulesTable(html string) (map[int]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, uwdocs.Errorf(uwdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	if doc.Find(RulesTableSelector).Length() == 0 {
		return nil, uwdocs.Errorf(uwdocs.ENOTFOUND, "selector %q not found", RulesTableSelector)
	}

	texts := make(map[int]string)
	var parseErr error
	doc.Find(RulesRowSelector).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		number, err := intAt(row, RulesNumberSelector)
		if err != nil {
			parseErr = err
			return false
		}

		cell, err := first(row, RulesTextCellSelector)
		if err != nil {
			parseErr = err
			return false
		}
		raw, err := cell.Html()
		if err != nil {
			parseErr = uwdocs.Errorf(uwdocs.EINVALID, "card %d: failed to render rules text: %v", number, err)
			return false
		}

		texts[number] = uwdocs.SanitizeText(raw)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return texts, nil
}

// ParseCardListPage reads the card rows and pagination indicators of one
// card library page. Rows come back without rules text.
func ParseCardListPage(html string) (*uwdocs.CardListPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, uwdocs.Errorf(uwdocs.EINVALID, "failed to parse HTML: %v", err)
	}

	current, err := CurrentPage(doc.Selection)
	if err != nil {
		return nil, err
	}
	maxPage, err := intAt(doc.Selection, MaxPageSelector)
	if err != nil {
		return nil, err
	}

	var cards []*uwdocs.Card
	var parseErr error
	doc.Find(CardRowSelector).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		card, err := parseCardRow(row)
		if err != nil {
			parseErr = err
			return false
		}
		cards = append(cards, card)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return &uwdocs.CardListPage{
		Cards:   cards,
		Page:    current,
		MaxPage: maxPage,
		Next:    uwdocs.NextPage(current, maxPage),
	}, nil
}

// CurrentPage returns the page number shown by the pagination indicator.
func CurrentPage(sel *goquery.Selection) (int, error) {
	return intAt(sel, CurrentPageSelector)
}

func parseCardRow(row *goquery.Selection) (*uwdocs.Card, error) {
	var card uwdocs.Card
	var err error

	if card.Number, err = intAt(row, CardNumberSelector); err != nil {
		return nil, err
	}
	if card.Name, err = textAt(row, CardNameSelector); err != nil {
		return nil, err
	}
	if card.Faction, err = textAt(row, CardFactionSelector); err != nil {
		return nil, err
	}
	typ, err := textAt(row, CardTypeSelector)
	if err != nil {
		return nil, err
	}
	card.Type = uwdocs.CardType(typ)
	if card.Location, err = textAt(row, CardLocationSelector); err != nil {
		return nil, err
	}

	img, err := first(row, CardImageSelector)
	if err != nil {
		return nil, err
	}
	card.Image, _ = img.Attr("src")

	return &card, nil
}

// first returns the first match of selector under sel, or ENOTFOUND.
func first(sel *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, uwdocs.Errorf(uwdocs.ENOTFOUND, "selector %q not found", selector)
	}
	return found, nil
}

// textAt returns the trimmed text of the first match with line breaks removed.
func textAt(sel *goquery.Selection, selector string) (string, error) {
	found, err := first(sel, selector)
	if err != nil {
		return "", err
	}
	text := strings.ReplaceAll(found.Text(), "\n", "")
	return strings.TrimSpace(text), nil
}

// intAt parses the leading digits of the first match's text.
func intAt(sel *goquery.Selection, selector string) (int, error) {
	text, err := textAt(sel, selector)
	if err != nil {
		return 0, err
	}

	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, uwdocs.Errorf(uwdocs.EINVALID, "selector %q: %q is not a number", selector, text)
	}
	return n, nil
}
