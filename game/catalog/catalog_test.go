package catalog_test

import (
	"testing"

	"github.com/minerco/server/game/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOreOrderGatesUnlocks(t *testing.T) {
	c := catalog.Default()

	assert.True(t, c.CanMine(catalog.OreCoal, catalog.OreCoal))
	assert.False(t, c.CanMine(catalog.OreCoal, catalog.OreCopper))
	assert.True(t, c.CanMine(catalog.OreDiamond, catalog.OreRainbow))
	assert.True(t, c.CanMine(catalog.OreDiamond, catalog.OreGoldrush))
	assert.False(t, c.CanMine(catalog.OreGold, catalog.OreRainbow))
	assert.False(t, c.CanMine("bogus", catalog.OreCoal))
}

func TestDefaultEveryCostOreExists(t *testing.T) {
	c := catalog.Default()
	for tier, cost := range c.PickaxeCosts {
		require.GreaterOrEqual(t, c.TierIndex(tier), 0, "tier %s", tier)
		for ore, qty := range cost {
			_, ok := c.Ore(ore)
			assert.True(t, ok, "cost ore %s of tier %s", ore, tier)
			assert.Positive(t, qty)
		}
	}
}

func TestDefaultRarityWeightsCoverPool(t *testing.T) {
	c := catalog.Default()

	total := 0
	covered := map[catalog.Rarity]bool{}
	for _, w := range c.RarityWeights {
		assert.Positive(t, w.Weight)
		// Every weighted rarity has at least one pet, so a draw can
		// never land in an empty pool.
		assert.NotEmpty(t, c.PetsByRarity(w.Rarity), "rarity %s", w.Rarity)
		covered[w.Rarity] = true
		total += w.Weight
	}
	assert.Equal(t, 100, total)
	for _, p := range c.Pets {
		assert.True(t, covered[p.Rarity], "pet %s rarity %s unweighted", p.ID, p.Rarity)
	}
}

func TestDefaultBaseOresExcludeSpecials(t *testing.T) {
	c := catalog.Default()
	base := c.BaseOres()
	require.Len(t, base, 7)
	for _, id := range base {
		assert.NotEqual(t, catalog.OreRainbow, id)
		assert.NotEqual(t, catalog.OreGoldrush, id)
	}
}

func TestDefaultCodeTable(t *testing.T) {
	c := catalog.Default()

	welcome := c.Codes["WELCOME"]
	assert.Equal(t, catalog.CodeSilver, welcome.Kind)
	assert.Equal(t, int64(200), welcome.Silver)

	lucky := c.Codes["LUCKY"]
	assert.Equal(t, catalog.CodePowerup, lucky.Kind)
	_, ok := c.Powerups[lucky.Powerup]
	assert.True(t, ok, "LUCKY references a defined powerup")

	event := c.Codes["GOLDRUSH"]
	assert.Equal(t, catalog.CodeEvent, event.Kind)
	assert.Positive(t, event.Mult)
	assert.Positive(t, event.Duration)
}

func TestDefaultGoldrushOreUnsellable(t *testing.T) {
	c := catalog.Default()
	o, ok := c.Ore(catalog.OreGoldrush)
	require.True(t, ok)
	assert.Zero(t, o.Value)
}
