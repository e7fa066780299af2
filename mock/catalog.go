package mock

import (
	"context"

	"github.com/fwojciec/uwdocs"
)

var _ uwdocs.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is a mock implementation of uwdocs.CatalogStore.
type CatalogStore struct {
	LoadCatalogFn func(ctx context.Context) (*uwdocs.Catalog, error)
	SaveCatalogFn func(ctx context.Context, catalog *uwdocs.Catalog) error
}

func (s *CatalogStore) LoadCatalog(ctx context.Context) (*uwdocs.Catalog, error) {
	return s.LoadCatalogFn(ctx)
}

func (s *CatalogStore) SaveCatalog(ctx context.Context, catalog *uwdocs.Catalog) error {
	return s.SaveCatalogFn(ctx, catalog)
}
