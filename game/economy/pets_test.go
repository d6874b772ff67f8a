package economy_test

import (
	"testing"

	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/game/economy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rarity bucket boundaries for the default weights
// (common 56, uncommon 24, rare 14, epic 6; total 100):
// 0-55 common, 56-79 uncommon, 80-93 rare, 94-99 epic.

func TestSpinPetPaidDeductsPrice(t *testing.T) {
	e := newEngine()
	p := freshPlayer()
	p.Silver = 150

	// ints: rarity draw 0 → common, pet draw 0 → mole (of mole, tortoise).
	res, err := e.SpinPet(p, false, &fakeRand{ints: []int{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, catalog.PetID("mole"), res.Pet.ID)
	assert.False(t, res.Duplicate)
	assert.Zero(t, p.Silver)
	assert.Equal(t, int64(150), p.Stats.SilverSpent)
	assert.True(t, p.HasPet("mole"))
}

func TestSpinPetInsufficientSilver(t *testing.T) {
	e := newEngine()
	p := freshPlayer()
	p.Silver = 149
	before := snapshot(t, p)

	_, err := e.SpinPet(p, false, &fakeRand{})
	assert.ErrorIs(t, err, economy.ErrInsufficientSilver)
	assert.Equal(t, before, snapshot(t, p))
}

func TestSpinPetFreeSkipsPayment(t *testing.T) {
	e := newEngine()
	p := freshPlayer()

	res, err := e.SpinPet(p, true, &fakeRand{ints: []int{94, 0}}) // epic → fox
	require.NoError(t, err)
	assert.Equal(t, catalog.PetID("fox"), res.Pet.ID)
	assert.Zero(t, p.Silver)
	assert.Zero(t, p.Stats.SilverSpent)
}

func TestSpinPetDuplicateRefunds(t *testing.T) {
	e := newEngine()
	p := freshPlayer()
	p.Pets = []catalog.PetID{"mole"}

	res, err := e.SpinPet(p, true, &fakeRand{ints: []int{0, 0}}) // common → mole again
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, int64(50), res.Refund)
	assert.Equal(t, int64(50), p.Silver)
	assert.Len(t, p.Pets, 1)
}

func TestSpinPetRarityBoundaries(t *testing.T) {
	e := newEngine()
	cases := []struct {
		draw int
		want catalog.Rarity
	}{
		{0, catalog.RarityCommon},
		{55, catalog.RarityCommon},
		{56, catalog.RarityUncommon},
		{79, catalog.RarityUncommon},
		{80, catalog.RarityRare},
		{93, catalog.RarityRare},
		{94, catalog.RarityEpic},
		{99, catalog.RarityEpic},
	}
	for _, tc := range cases {
		p := freshPlayer()
		res, err := e.SpinPet(p, true, &fakeRand{ints: []int{tc.draw, 0}})
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Pet.Rarity, "draw %d", tc.draw)
	}
}
