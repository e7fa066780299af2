package extract_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/uwdocs"
	"github.com/fwojciec/uwdocs/extract"
	"github.com/fwojciec/uwdocs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedSource serves pages from a fixed slice, reporting len(pages) as the
// maximum page.
func pagedSource(pages ...[]*uwdocs.Card) *mock.CardListSource {
	return &mock.CardListSource{
		FetchCardListPageFn: func(_ context.Context, page int) (*uwdocs.CardListPage, error) {
			return &uwdocs.CardListPage{
				Cards:   pages[page-1],
				Page:    page,
				MaxPage: len(pages),
				Next:    uwdocs.NextPage(page, len(pages)),
			}, nil
		},
	}
}

func staticRules(texts map[int]string) *mock.RulesTextSource {
	return &mock.RulesTextSource{
		FetchRulesTextFn: func(context.Context) (map[int]string, error) {
			return texts, nil
		},
	}
}

func TestExtractor_Run(t *testing.T) {
	t.Parallel()

	t.Run("merges text, derives sets and saves catalog", func(t *testing.T) {
		t.Parallel()

		var saved *uwdocs.Catalog
		store := &mock.CatalogStore{
			SaveCatalogFn: func(_ context.Context, c *uwdocs.Catalog) error {
				saved = c
				return nil
			},
		}

		e := &extract.Extractor{
			Rules: staticRules(map[int]string{1: "[Weapon]Range 1[/Weapon]", 3: "Push 1"}),
			Cards: pagedSource(
				[]*uwdocs.Card{
					{Name: "A", Number: 1, Faction: "F1", Type: uwdocs.Ploy, Location: "L1"},
					{Name: "B", Number: 2, Faction: "F1", Type: uwdocs.Upgrade, Location: "L1"},
				},
				[]*uwdocs.Card{
					{Name: "C", Number: 3, Faction: "F2", Type: uwdocs.Ploy, Location: "L2"},
				},
			),
			Store: store,
		}

		catalog, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Same(t, catalog, saved)
		require.Len(t, catalog.Cards, 3)
		assert.Equal(t, "[Weapon]Range 1[/Weapon]", catalog.Cards[0].Text)
		assert.Empty(t, catalog.Cards[1].Text)
		assert.Equal(t, "Push 1", catalog.Cards[2].Text)
		assert.Equal(t, []string{"L1", "L2"}, catalog.Locations)
		assert.Equal(t, []string{"F1", "F2"}, catalog.Factions)
	})

	t.Run("rules text failure stops the run", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{
			Rules: &mock.RulesTextSource{
				FetchRulesTextFn: func(context.Context) (map[int]string, error) {
					return nil, errors.New("selector #carddb not found")
				},
			},
			Cards: &mock.CardListSource{
				FetchCardListPageFn: func(context.Context, int) (*uwdocs.CardListPage, error) {
					t.Fatal("card list should not be fetched")
					return nil, nil
				},
			},
		}

		_, err := e.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "#carddb")
	})

	t.Run("duplicate card numbers are a conflict", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{
			Rules: staticRules(nil),
			Cards: pagedSource(
				[]*uwdocs.Card{{Name: "A", Number: 1, Faction: "F1", Location: "L1"}},
				[]*uwdocs.Card{{Name: "A", Number: 1, Faction: "F1", Location: "L1"}},
			),
			Store: &mock.CatalogStore{
				SaveCatalogFn: func(context.Context, *uwdocs.Catalog) error {
					t.Fatal("catalog should not be saved")
					return nil
				},
			},
		}

		_, err := e.Run(context.Background())

		require.Error(t, err)
		assert.Equal(t, uwdocs.ECONFLICT, uwdocs.ErrorCode(err))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		t.Parallel()

		e := &extract.Extractor{
			Rules: staticRules(nil),
			Cards: pagedSource([]*uwdocs.Card{{Name: "A", Number: 1, Faction: "F1", Location: "L1"}}),
			Store: &mock.CatalogStore{
				SaveCatalogFn: func(context.Context, *uwdocs.Catalog) error {
					return errors.New("read-only file system")
				},
			},
		}

		_, err := e.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "saving catalog")
	})

	t.Run("logs progress", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		e := &extract.Extractor{
			Rules: staticRules(map[int]string{1: "x"}),
			Cards: pagedSource([]*uwdocs.Card{{Name: "A", Number: 1, Faction: "F1", Location: "L1"}}),
			Store: &mock.CatalogStore{
				SaveCatalogFn: func(context.Context, *uwdocs.Catalog) error { return nil },
			},
			Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		}

		_, err := e.Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "found cards")
		assert.Contains(t, buf.String(), "current=1 max=1 items=1")
	})
}

func TestExtractor_FetchCards(t *testing.T) {
	t.Parallel()

	t.Run("stops when current page reaches max", func(t *testing.T) {
		t.Parallel()

		var requested []int
		src := pagedSource(
			[]*uwdocs.Card{{Name: "A", Number: 1}},
			[]*uwdocs.Card{{Name: "B", Number: 2}},
			[]*uwdocs.Card{{Name: "C", Number: 3}},
		)
		inner := src.FetchCardListPageFn
		src.FetchCardListPageFn = func(ctx context.Context, page int) (*uwdocs.CardListPage, error) {
			requested = append(requested, page)
			return inner(ctx, page)
		}

		e := &extract.Extractor{Cards: src}
		cards, err := e.FetchCards(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, requested)
		require.Len(t, cards, 3)
		assert.Equal(t, "C", cards[2].Name)
	})

	t.Run("fails when pagination never ends", func(t *testing.T) {
		t.Parallel()

		calls := 0
		e := &extract.Extractor{
			Cards: &mock.CardListSource{
				FetchCardListPageFn: func(_ context.Context, page int) (*uwdocs.CardListPage, error) {
					calls++
					// Site keeps reporting page 1 of 2.
					return &uwdocs.CardListPage{Page: 1, MaxPage: 2, Next: 2}, nil
				},
			},
			MaxPages: 5,
		}

		_, err := e.FetchCards(context.Background())

		require.Error(t, err)
		assert.Equal(t, uwdocs.EINTERNAL, uwdocs.ErrorCode(err))
		assert.Equal(t, "pagination exceeded 5 pages", uwdocs.ErrorMessage(err))
		assert.Equal(t, 5, calls)
	})

	t.Run("single attempt without retry delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		e := &extract.Extractor{
			Cards: &mock.CardListSource{
				FetchCardListPageFn: func(context.Context, int) (*uwdocs.CardListPage, error) {
					calls++
					return nil, errors.New("navigation failed")
				},
			},
		}

		_, err := e.FetchCards(context.Background())

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries failed page", func(t *testing.T) {
		t.Parallel()

		calls := 0
		e := &extract.Extractor{
			Cards: &mock.CardListSource{
				FetchCardListPageFn: func(_ context.Context, page int) (*uwdocs.CardListPage, error) {
					calls++
					if calls < 3 {
						return nil, errors.New("element not found")
					}
					return &uwdocs.CardListPage{Cards: []*uwdocs.Card{{Name: "A"}}, Page: 1, MaxPage: 1}, nil
				},
			},
			RetryDelays: []time.Duration{time.Millisecond, time.Millisecond},
		}

		cards, err := e.FetchCards(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Len(t, cards, 1)
	})

	t.Run("waits on limiter between pages", func(t *testing.T) {
		t.Parallel()

		limiter := &countingLimiter{}
		e := &extract.Extractor{
			Cards:   pagedSource(nil, nil, nil),
			Limiter: limiter,
		}

		_, err := e.FetchCards(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, limiter.waits)
	})

	t.Run("limiter error stops the walk", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		e := &extract.Extractor{
			Cards:   pagedSource(nil, nil),
			Limiter: &countingLimiter{err: context.Canceled},
		}
		cancel()

		_, err := e.FetchCards(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

type countingLimiter struct {
	waits int
	err   error
}

func (l *countingLimiter) Wait(context.Context) error {
	l.waits++
	return l.err
}

func TestRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Empty(t, extract.RetryDelays(0))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, extract.RetryDelays(3))
}
