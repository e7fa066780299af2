package uwdocs_test

import (
	"testing"

	"github.com/fwojciec/uwdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards() []*uwdocs.Card {
	return []*uwdocs.Card{
		{Name: "A", Number: 1, Faction: "F1", Type: uwdocs.Ploy, Location: "L1"},
		{Name: "B", Number: 2, Faction: "F1", Type: uwdocs.Upgrade, Location: "L1"},
		{Name: "C", Number: 3, Faction: "F2", Type: uwdocs.Ploy, Location: "L2"},
	}
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("derives locations and factions in first-occurrence order", func(t *testing.T) {
		t.Parallel()

		cards := []*uwdocs.Card{
			{Name: "A", Number: 1, Faction: "Garrek's Reavers", Location: "Shadespire"},
			{Name: "B", Number: 2, Faction: "Steelheart's Champions", Location: "Shadespire"},
			{Name: "C", Number: 3, Faction: "Garrek's Reavers", Location: "Nightvault"},
			{Name: "D", Number: 4, Faction: "Universal", Location: "Shadespire"},
		}

		catalog := uwdocs.NewCatalog(cards)

		assert.Equal(t, []string{"Shadespire", "Nightvault"}, catalog.Locations)
		assert.Equal(t, []string{"Garrek's Reavers", "Steelheart's Champions", "Universal"}, catalog.Factions)
		assert.Equal(t, cards, catalog.Cards)
	})

	t.Run("every value appears exactly once and nothing else", func(t *testing.T) {
		t.Parallel()

		catalog := uwdocs.NewCatalog(testCards())

		assert.ElementsMatch(t, []string{"L1", "L2"}, catalog.Locations)
		assert.ElementsMatch(t, []string{"F1", "F2"}, catalog.Factions)
		require.NoError(t, catalog.Validate())
	})

	t.Run("empty card list", func(t *testing.T) {
		t.Parallel()

		catalog := uwdocs.NewCatalog(nil)

		assert.Empty(t, catalog.Locations)
		assert.Empty(t, catalog.Factions)
		assert.NotNil(t, catalog.Locations)
	})
}

func TestCatalog_Validate(t *testing.T) {
	t.Parallel()

	t.Run("duplicate card number", func(t *testing.T) {
		t.Parallel()

		cards := testCards()
		cards[2].Number = 1
		catalog := uwdocs.NewCatalog(cards)

		err := catalog.Validate()

		require.Error(t, err)
		assert.Equal(t, uwdocs.ECONFLICT, uwdocs.ErrorCode(err))
	})

	t.Run("location without cards", func(t *testing.T) {
		t.Parallel()

		catalog := uwdocs.NewCatalog(testCards())
		catalog.Locations = append(catalog.Locations, "L3")

		err := catalog.Validate()

		require.Error(t, err)
		assert.Equal(t, uwdocs.EINVALID, uwdocs.ErrorCode(err))
	})

	t.Run("faction missing from list", func(t *testing.T) {
		t.Parallel()

		catalog := uwdocs.NewCatalog(testCards())
		catalog.Factions = []string{"F1"}

		err := catalog.Validate()

		require.Error(t, err)
		assert.Equal(t, uwdocs.EINVALID, uwdocs.ErrorCode(err))
	})

	t.Run("card without name", func(t *testing.T) {
		t.Parallel()

		cards := testCards()
		cards[0].Name = ""
		catalog := uwdocs.NewCatalog(cards)

		err := catalog.Validate()

		require.Error(t, err)
		assert.Equal(t, uwdocs.EINVALID, uwdocs.ErrorCode(err))
	})
}

func TestNextPage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, uwdocs.NextPage(1, 3))
	assert.Equal(t, 3, uwdocs.NextPage(2, 3))
	assert.Equal(t, 0, uwdocs.NextPage(3, 3))
	assert.Equal(t, 0, uwdocs.NextPage(4, 3))
	assert.Equal(t, 0, uwdocs.NextPage(1, 1))
}
