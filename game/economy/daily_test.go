package economy_test

import (
	"testing"
	"time"

	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/game/economy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimDailyFirstTime(t *testing.T) {
	e := newEngine()
	p := freshPlayer()

	res, err := e.ClaimDaily(p, testNow, &fakeRand{ints: []int{0}})
	require.NoError(t, err)
	assert.Equal(t, int64(200), res.Reward)
	assert.Equal(t, catalog.PowerupStrength, res.Powerup)
	assert.Equal(t, int64(200), p.Silver)
	assert.Equal(t, testNow.UnixMilli(), p.LastDailyMs)
	assert.Equal(t, 2.0, e.Multiplier(p, catalog.EffectStrength, testNow))
	// Daily powerup is the short 60s variant.
	assert.Equal(t, 1.0, e.Multiplier(p, catalog.EffectStrength, testNow.Add(61*time.Second)))
}

func TestClaimDailyCooldown(t *testing.T) {
	e := newEngine()
	p := freshPlayer()

	_, err := e.ClaimDaily(p, testNow, &fakeRand{ints: []int{1}})
	require.NoError(t, err)
	before := snapshot(t, p)

	_, err = e.ClaimDaily(p, testNow.Add(23*time.Hour), &fakeRand{ints: []int{1}})
	assert.ErrorIs(t, err, economy.ErrCooldown)
	assert.Equal(t, before, snapshot(t, p))

	later := testNow.Add(25 * time.Hour)
	res, err := e.ClaimDaily(p, later, &fakeRand{ints: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, catalog.PowerupLuck, res.Powerup)
	assert.Equal(t, later.UnixMilli(), p.LastDailyMs)
	assert.Equal(t, int64(400), p.Silver)
}
