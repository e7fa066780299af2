package mock

import (
	"context"

	"github.com/fwojciec/uwdocs"
)

// Compile-time interface verification.
var (
	_ uwdocs.RulesTextSource = (*RulesTextSource)(nil)
	_ uwdocs.CardListSource  = (*CardListSource)(nil)
)

// RulesTextSource is a mock implementation of uwdocs.RulesTextSource.
type RulesTextSource struct {
	FetchRulesTextFn func(ctx context.Context) (map[int]string, error)
}

func (s *RulesTextSource) FetchRulesText(ctx context.Context) (map[int]string, error) {
	return s.FetchRulesTextFn(ctx)
}

// CardListSource is a mock implementation of uwdocs.CardListSource.
type CardListSource struct {
	FetchCardListPageFn func(ctx context.Context, page int) (*uwdocs.CardListPage, error)
}

func (s *CardListSource) FetchCardListPage(ctx context.Context, page int) (*uwdocs.CardListPage, error) {
	return s.FetchCardListPageFn(ctx, page)
}
