package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/uwdocs"
)

// Data file names inside the catalog directory.
const (
	CardsFile     = "cards.json"
	LocationsFile = "locations.json"
	FactionsFile  = "factions.json"
)

// Ensure CatalogStore implements uwdocs.CatalogStore at compile time.
var _ uwdocs.CatalogStore = (*CatalogStore)(nil)

// CatalogStore keeps the catalog as three JSON files: the card list, the
// location names and the faction names.
type CatalogStore struct {
	dir string
}

// NewCatalogStore creates a CatalogStore reading and writing in dir.
func NewCatalogStore(dir string) *CatalogStore {
	return &CatalogStore{dir: dir}
}

// LoadCatalog reads the three data files. The contents are not validated.
func (s *CatalogStore) LoadCatalog(ctx context.Context) (*uwdocs.Catalog, error) {
	var catalog uwdocs.Catalog
	if err := s.readJSON(CardsFile, &catalog.Cards); err != nil {
		return nil, err
	}
	if err := s.readJSON(LocationsFile, &catalog.Locations); err != nil {
		return nil, err
	}
	if err := s.readJSON(FactionsFile, &catalog.Factions); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// SaveCatalog writes the three data files, replacing existing ones.
func (s *CatalogStore) SaveCatalog(ctx context.Context, catalog *uwdocs.Catalog) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	if err := s.writeJSON(CardsFile, catalog.Cards); err != nil {
		return err
	}
	if err := s.writeJSON(LocationsFile, catalog.Locations); err != nil {
		return err
	}
	return s.writeJSON(FactionsFile, catalog.Factions)
}

func (s *CatalogStore) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return uwdocs.Errorf(uwdocs.ENOTFOUND, "data file %s not found in %s", name, s.dir)
	} else if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return uwdocs.Errorf(uwdocs.EINVALID, "data file %s: %v", name, err)
	}
	return nil
}

func (s *CatalogStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0644)
}
