// Package economy implements the server-authoritative progression
// engine: pure state transitions over a player record given the game
// catalog, the current time, and an injected random source. The engine
// performs no I/O; callers bracket each action with a persistence
// read/write (see api/rest).
package economy

import (
	"math"
	"time"

	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/model"
)

// Rand is the randomness the engine draws from. *math/rand.Rand
// satisfies it; tests supply a scripted source so every roll is
// reproducible.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// Engine applies progression actions against player records. It is
// stateless apart from the immutable catalog and safe for concurrent
// use across different records.
type Engine struct {
	cat *catalog.Catalog
}

// New creates an Engine bound to a catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Catalog exposes the engine's game data to read-only consumers.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// MineResult reports the outcome of one swing.
type MineResult struct {
	Ore  catalog.OreID `json:"ore"`  // ore actually granted
	Qty  int64         `json:"qty"`
	Crit bool          `json:"crit"`
}

// Mine performs one swing at the named ore. The base yield of 1 is
// scaled by the strength multiplier (floored, minimum 1), may be
// doubled by a critical hit, and is redirected for the two special
// ores: rainbow grants a uniformly random base ore instead of itself,
// goldrush grants double gold. Gold grants are further scaled by the
// live goldrush event modifier.
func (e *Engine) Mine(p *model.Player, ore catalog.OreID, now time.Time, rng Rand) (*MineResult, error) {
	if _, ok := e.cat.Ore(ore); !ok {
		return nil, ErrUnknownOre
	}
	if !e.cat.CanMine(p.Pickaxe, ore) {
		return nil, ErrLockedOre
	}

	qty := int64(math.Floor(1 * e.Multiplier(p, catalog.EffectStrength, now)))
	if qty < 1 {
		qty = 1
	}
	crit := rng.Float64()*100 < e.CritChance(p)
	if crit {
		qty *= 2
	}

	granted := ore
	switch ore {
	case catalog.OreRainbow:
		base := e.cat.BaseOres()
		granted = base[rng.Intn(len(base))]
	case catalog.OreGoldrush:
		granted = catalog.OreGold
		qty *= 2
	}
	if granted == catalog.OreGold {
		if m := e.Multiplier(p, catalog.EffectGoldrush, now); m > 1 {
			qty = int64(math.Floor(float64(qty) * m))
		}
	}

	// All checks passed; mutate.
	if crit {
		p.Stats.Crits++
	}
	p.AddOre(granted, qty)
	return &MineResult{Ore: granted, Qty: qty, Crit: crit}, nil
}

// SellResult reports a sweep's credited gain.
type SellResult struct {
	Gain   int64 `json:"gain"`
	Silver int64 `json:"silver"`
}

// SellAll converts every held ore with a non-zero sale value to silver
// at catalog value, scaled by the sell multiplier and floored. Zero-value
// ores (event currencies) are untouched.
func (e *Engine) SellAll(p *model.Player, now time.Time) (*SellResult, error) {
	var gain int64
	for _, o := range e.cat.Ores {
		if o.Value == 0 {
			continue
		}
		qty := p.OreQty(o.ID)
		if qty > 0 {
			gain += qty * o.Value
			p.Inventory[o.ID] = 0
		}
	}
	gain = int64(math.Floor(float64(gain) * e.Multiplier(p, catalog.EffectSell, now)))
	p.Silver += gain
	p.Stats.SilverEarned += gain
	return &SellResult{Gain: gain, Silver: p.Silver}, nil
}

// UpgradeResult reports a pickaxe or sword purchase.
type UpgradeResult struct {
	AlreadyOwned bool `json:"already_owned"`
}

// UpgradePickaxe buys the named pickaxe tier. Buying a tier at or below
// the current one is a no-op ("already owned"): the pickaxe never
// downgrades. The full cost is checked before any deduction.
func (e *Engine) UpgradePickaxe(p *model.Player, tier catalog.OreID) (*UpgradeResult, error) {
	cost, ok := e.cat.PickaxeCosts[tier]
	if !ok {
		return nil, ErrUnknownTier
	}
	if e.cat.TierIndex(p.Pickaxe) >= e.cat.TierIndex(tier) {
		return &UpgradeResult{AlreadyOwned: true}, nil
	}
	for ore, need := range cost {
		if p.OreQty(ore) < need {
			return nil, ErrInsufficientResources
		}
	}
	for ore, need := range cost {
		p.Inventory[ore] -= need
	}
	p.Pickaxe = tier
	return &UpgradeResult{}, nil
}

// BuySword buys the named sword tier for silver. Like the pickaxe,
// swords only ever upgrade.
func (e *Engine) BuySword(p *model.Player, tier catalog.SwordTier) (*UpgradeResult, error) {
	sw, ok := e.cat.Sword(tier)
	if !ok {
		return nil, ErrUnknownSword
	}
	if e.cat.SwordIndex(p.Sword) >= e.cat.SwordIndex(tier) {
		return &UpgradeResult{AlreadyOwned: true}, nil
	}
	if p.Silver < sw.Price {
		return nil, ErrInsufficientSilver
	}
	p.Silver -= sw.Price
	p.Stats.SilverSpent += sw.Price
	p.Sword = tier
	return &UpgradeResult{}, nil
}

// PowerupResult reports an activated powerup.
type PowerupResult struct {
	Effect  catalog.Effect `json:"effect"`
	Mult    float64        `json:"mult"`
	UntilMs int64          `json:"until"`
}

// BuyPowerup deducts the powerup's price and overwrites the effect's
// active entry with a fresh expiry. Durations do not stack.
func (e *Engine) BuyPowerup(p *model.Player, name string, now time.Time) (*PowerupResult, error) {
	pu, ok := e.cat.Powerups[name]
	if !ok {
		return nil, ErrUnknownPowerup
	}
	if p.Silver < pu.Price {
		return nil, ErrInsufficientSilver
	}
	p.Silver -= pu.Price
	p.Stats.SilverSpent += pu.Price
	until := now.Add(pu.Duration)
	p.SetPowerup(pu.Effect, pu.Mult, until)
	return &PowerupResult{Effect: pu.Effect, Mult: pu.Mult, UntilMs: until.UnixMilli()}, nil
}
