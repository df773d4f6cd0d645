package testutils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/pkg/clock"
	"github.com/KirkDiggler/madking-api/internal/redis"
	"github.com/KirkDiggler/madking-api/internal/repositories/catalog"
)

// Catalog bundles one repository per catalog kind
type Catalog struct {
	Races   catalog.Repository[*entities.Race]
	Classes catalog.Repository[*entities.Class]
	Origins catalog.Repository[*entities.Origin]
	Items   catalog.Repository[*entities.Item]
	Spells  catalog.Repository[*entities.Spell]
}

// NewCatalog creates Redis backed catalog repositories
func NewCatalog(t *testing.T, client redis.Client, clk clock.Clock) *Catalog {
	t.Helper()

	cfg := catalog.RedisConfig{Client: client, Clock: clk}
	var (
		c   Catalog
		err error
	)

	c.Races, err = catalog.NewRaces(cfg)
	require.NoError(t, err)
	c.Classes, err = catalog.NewClasses(cfg)
	require.NoError(t, err)
	c.Origins, err = catalog.NewOrigins(cfg)
	require.NoError(t, err)
	c.Items, err = catalog.NewItems(cfg)
	require.NoError(t, err)
	c.Spells, err = catalog.NewSpells(cfg)
	require.NoError(t, err)

	return &c
}

// Seed normalizes and stores every fixture the way the catalog
// orchestrator would
func (c *Catalog) Seed(t *testing.T) {
	t.Helper()

	seed(t, c.Races, TestDwarf())
	seed(t, c.Classes, TestWarrior(), TestMage())
	seed(t, c.Origins, TestSoldier())
	seed(t, c.Items, TestLongsword(), TestGreatsword(), TestShield(), TestChainmail(), TestPotion())
	seed(t, c.Spells, TestSpark(), TestFireball())
}

func seed[T entities.CatalogEntry](t *testing.T, repo catalog.Repository[T], entries ...T) {
	t.Helper()

	for _, entry := range entries {
		entry.Normalize()
		_, err := repo.Create(context.Background(), catalog.CreateInput[T]{Entry: entry})
		require.NoError(t, err)
	}
}
