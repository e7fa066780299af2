// Package extract scrapes the card catalog: it pulls rules text and the
// paginated card list from their sources, merges them by card number and
// saves the resulting catalog.
package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/uwdocs"
)

// Limiter paces requests. *rate.Limiter satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Extractor orchestrates one scrape run.
type Extractor struct {
	Rules uwdocs.RulesTextSource
	Cards uwdocs.CardListSource
	Store uwdocs.CatalogStore

	// MaxPages bounds the card list walk. Zero means uwdocs.DefaultMaxPages.
	MaxPages int

	// RetryDelays are waited between attempts of a failed fetch.
	// Nil means a single attempt.
	RetryDelays []time.Duration

	// Limiter, if set, is waited on before each page turn.
	Limiter Limiter

	Logger *slog.Logger
}

// Run scrapes both sources, merges them, and saves the catalog.
func (e *Extractor) Run(ctx context.Context) (*uwdocs.Catalog, error) {
	logger := e.logger()

	logger.Info("fetching rules text")
	texts, err := withRetry(ctx, "rules text", e.RetryDelays, e.logf, e.Rules.FetchRulesText)
	if err != nil {
		return nil, fmt.Errorf("rules text: %w", err)
	}
	logger.Info("found rules text", "count", len(texts))

	cards, err := e.FetchCards(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("found cards", "count", len(cards))

	Merge(texts, cards)

	catalog := uwdocs.NewCatalog(cards)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	logger.Info("found locations", "count", len(catalog.Locations))
	logger.Info("found factions", "count", len(catalog.Factions))

	if err := e.Store.SaveCatalog(ctx, catalog); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}

	return catalog, nil
}

// FetchCards walks the card list from page 1 until the source reports the
// last page. It fails with EINTERNAL once more than MaxPages pages have been
// read, so a site that never reports a final page cannot hang the run.
func (e *Extractor) FetchCards(ctx context.Context) ([]*uwdocs.Card, error) {
	maxPages := e.MaxPages
	if maxPages <= 0 {
		maxPages = uwdocs.DefaultMaxPages
	}

	var cards []*uwdocs.Card
	page := 1
	for read := 0; ; read++ {
		if read >= maxPages {
			return nil, uwdocs.Errorf(uwdocs.EINTERNAL, "pagination exceeded %d pages", maxPages)
		}

		if read > 0 && e.Limiter != nil {
			if err := e.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		result, err := withRetry(ctx, fmt.Sprintf("card list page %d", page), e.RetryDelays, e.logf,
			func(ctx context.Context) (*uwdocs.CardListPage, error) {
				return e.Cards.FetchCardListPage(ctx, page)
			})
		if err != nil {
			return nil, fmt.Errorf("card list page %d: %w", page, err)
		}

		cards = append(cards, result.Cards...)
		e.logger().Info("page",
			"current", result.Page,
			"max", result.MaxPage,
			"items", len(cards),
		)

		if result.Next == 0 {
			return cards, nil
		}
		page = result.Next
	}
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Logger
}

func (e *Extractor) logf(format string, args ...any) {
	e.logger().Warn(fmt.Sprintf(format, args...))
}
