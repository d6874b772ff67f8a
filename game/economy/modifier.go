package economy

import (
	"time"

	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/model"
)

// Multiplier composes the effective multiplicative factor for an effect:
// the live powerup entry (if any) times every owned pet's contribution.
// Absence of any source yields 1.0. Expired powerup entries never
// contribute, whether or not they have been pruned.
func (e *Engine) Multiplier(p *model.Player, effect catalog.Effect, now time.Time) float64 {
	m := 1.0
	if entry, ok := p.Powerups[effect]; ok && entry.Live(now) {
		m *= entry.Mult
	}
	for _, id := range p.Pets {
		pet, ok := e.cat.Pet(id)
		if !ok {
			continue
		}
		if f, ok := pet.Effects[effect]; ok && effect != catalog.EffectCrit {
			m *= f
		}
	}
	return m
}

// CritChance returns the additive critical-hit chance on the 0-100
// scale: the equipped sword's base chance plus each pet's crit
// contribution (stored as a fraction, converted to percentage points).
// The value is not capped here; the Bernoulli trial in Mine saturates
// naturally at 100.
func (e *Engine) CritChance(p *model.Player) float64 {
	chance := 0.0
	if sw, ok := e.cat.Sword(p.Sword); ok {
		chance = sw.CritChance
	}
	for _, id := range p.Pets {
		pet, ok := e.cat.Pet(id)
		if !ok {
			continue
		}
		chance += pet.Effects[catalog.EffectCrit] * 100
	}
	return chance
}
