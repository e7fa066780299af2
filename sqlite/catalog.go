package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/uwdocs"
)

// Compile-time interface verification.
var _ uwdocs.CatalogStore = (*CatalogStore)(nil)

// CatalogStore implements uwdocs.CatalogStore using SQLite. Saving replaces
// the whole catalog; order is kept through the position columns.
type CatalogStore struct {
	db *DB
}

// NewCatalogStore creates a new CatalogStore.
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// LoadCatalog returns the saved catalog in saved order.
func (s *CatalogStore) LoadCatalog(ctx context.Context) (*uwdocs.Catalog, error) {
	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT saved_at FROM catalog WHERE id = 1`).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, uwdocs.Errorf(uwdocs.ENOTFOUND, "catalog not found")
	}
	if err != nil {
		return nil, err
	}

	catalog := &uwdocs.Catalog{}
	if catalog.Cards, err = s.findCards(ctx); err != nil {
		return nil, err
	}
	if catalog.Locations, err = s.findNames(ctx, "locations"); err != nil {
		return nil, err
	}
	if catalog.Factions, err = s.findNames(ctx, "factions"); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (s *CatalogStore) findCards(ctx context.Context) ([]*uwdocs.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, number, faction, type, location, image, text
		FROM cards
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []*uwdocs.Card{}
	for rows.Next() {
		var card uwdocs.Card
		var typ string
		if err := rows.Scan(&card.Name, &card.Number, &card.Faction, &typ,
			&card.Location, &card.Image, &card.Text); err != nil {
			return nil, err
		}
		card.Type = uwdocs.CardType(typ)
		cards = append(cards, &card)
	}
	return cards, rows.Err()
}

// findNames reads a name table; table is one of the fixed schema names.
func (s *CatalogStore) findNames(ctx context.Context, table string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM "+table+" ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SaveCatalog replaces the stored catalog in a single transaction.
func (s *CatalogStore) SaveCatalog(ctx context.Context, catalog *uwdocs.Catalog) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM cards`,
		`DELETE FROM locations`,
		`DELETE FROM factions`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	for i, card := range catalog.Cards {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cards (number, position, name, faction, type, location, image, text)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, card.Number, i, card.Name, card.Faction, string(card.Type), card.Location, card.Image, card.Text)
		if err != nil {
			return uwdocs.Errorf(uwdocs.ECONFLICT, "saving card %d: %v", card.Number, err)
		}
	}
	if err := insertNames(ctx, tx, "locations", catalog.Locations); err != nil {
		return err
	}
	if err := insertNames(ctx, tx, "factions", catalog.Factions); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO catalog (id, saved_at) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET saved_at = excluded.saved_at
	`, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	return tx.Commit()
}

func insertNames(ctx context.Context, tx *sql.Tx, table string, names []string) error {
	for i, name := range names {
		if _, err := tx.ExecContext(ctx, "INSERT INTO "+table+" (name, position) VALUES (?, ?)", name, i); err != nil {
			return uwdocs.Errorf(uwdocs.ECONFLICT, "saving %s %q: %v", table, name, err)
		}
	}
	return nil
}
