package rod

import (
	"context"

	"github.com/fwojciec/uwdocs"
	"github.com/fwojciec/uwdocs/goquery"
)

// Compile-time interface verification.
var (
	_ uwdocs.RulesTextSource = (*RulesTextSource)(nil)
	_ uwdocs.CardListSource  = (*CardListSource)(nil)
)

// RulesTextSource reads the rules text table from the card database site.
type RulesTextSource struct {
	browser *Browser
	url     string
}

// NewRulesTextSource returns a RulesTextSource that loads url in browser.
func NewRulesTextSource(browser *Browser, url string) *RulesTextSource {
	return &RulesTextSource{browser: browser, url: url}
}

// FetchRulesText loads the table and returns sanitized text by card number.
func (s *RulesTextSource) FetchRulesText(ctx context.Context) (map[int]string, error) {
	page, err := s.browser.Open(ctx, s.url, goquery.RulesTableSelector)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}
	return goquery.ParseRulesTable(html)
}

// CardListSource walks the paginated card library in one tab, clicking the
// next button to move forward. It is not safe for concurrent use.
type CardListSource struct {
	browser *Browser
	url     string

	page    *Page
	current int
}

// NewCardListSource returns a CardListSource that loads url in browser.
// Close must be called to release the tab.
func NewCardListSource(browser *Browser, url string) *CardListSource {
	return &CardListSource{browser: browser, url: url}
}

// FetchCardListPage returns the rows of page n. Requesting the page already
// shown re-reads it; requesting an earlier page reloads the library.
func (s *CardListSource) FetchCardListPage(ctx context.Context, n int) (*uwdocs.CardListPage, error) {
	if n < 1 {
		return nil, uwdocs.Errorf(uwdocs.EINVALID, "invalid page %d", n)
	}

	if s.page == nil || n < s.current {
		if err := s.open(ctx); err != nil {
			return nil, err
		}
	}
	s.page.ctx = ctx

	for s.current < n {
		if err := s.turn(); err != nil {
			// The tab may have moved without s.current following it.
			_ = s.Close()
			return nil, err
		}
	}

	html, err := s.page.HTML()
	if err != nil {
		return nil, err
	}
	return goquery.ParseCardListPage(html)
}

// turn clicks the next button and waits for the indicator to advance.
func (s *CardListSource) turn() error {
	if err := s.page.Click(goquery.NextPageSelector); err != nil {
		return err
	}
	if err := s.page.WaitForInt(goquery.CurrentPageSelector, s.current+1); err != nil {
		return err
	}
	s.current++
	return nil
}

func (s *CardListSource) open(ctx context.Context) error {
	if err := s.Close(); err != nil {
		return err
	}

	page, err := s.browser.Open(ctx, s.url, goquery.CardRowSelector)
	if err != nil {
		return err
	}

	current, err := page.Int(goquery.CurrentPageSelector)
	if err != nil {
		_ = page.Close()
		return err
	}

	s.page = page
	s.current = current
	return nil
}

// Close releases the tab, if one is open.
func (s *CardListSource) Close() error {
	if s.page == nil {
		return nil
	}
	err := s.page.Close()
	s.page = nil
	s.current = 0
	return err
}
