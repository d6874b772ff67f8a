package economy

import (
	"time"

	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/model"
)

// DailyResult reports a claimed daily bonus.
type DailyResult struct {
	Reward  int64  `json:"reward"`
	Powerup string `json:"powerup"`
}

// ClaimDaily credits the fixed daily reward and grants one of the two
// shop powerups, chosen uniformly, for the short daily duration. A
// second claim within the cooldown fails; a never-claimed record
// (LastDailyMs == 0) always succeeds.
func (e *Engine) ClaimDaily(p *model.Player, now time.Time, rng Rand) (*DailyResult, error) {
	if p.LastDailyMs != 0 && now.UnixMilli()-p.LastDailyMs < e.cat.DailyCooldown.Milliseconds() {
		return nil, ErrCooldown
	}
	p.LastDailyMs = now.UnixMilli()
	p.Silver += e.cat.DailyReward
	p.Stats.SilverEarned += e.cat.DailyReward

	name := catalog.PowerupStrength
	if rng.Intn(2) == 1 {
		name = catalog.PowerupLuck
	}
	pu := e.cat.Powerups[name]
	p.SetPowerup(pu.Effect, pu.Mult, now.Add(e.cat.DailyPowerupDur))
	return &DailyResult{Reward: e.cat.DailyReward, Powerup: name}, nil
}
