package economy

import (
	"strings"
	"time"

	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/model"
)

// RedeemResult reports a redeemed code.
type RedeemResult struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	// FreeSpin signals the caller to invoke SpinPet(free=true) as a
	// separate action; the redeem itself only touches silver, inventory
	// and powerup state.
	FreeSpin bool `json:"free_spin,omitempty"`
}

// RedeemCode consumes a one-time code. The code string is trimmed and
// upper-cased before lookup. On success the code lands in the used set
// together with its reward in a single transition, so a replay can
// never re-apply the reward.
func (e *Engine) RedeemCode(p *model.Player, code string, now time.Time) (*RedeemResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCodeRequired
	}
	if p.HasUsedCode(code) {
		return nil, ErrCodeAlreadyUsed
	}
	reward, ok := e.cat.Codes[code]
	if !ok {
		return nil, ErrInvalidCode
	}

	p.UsedCodes = append(p.UsedCodes, code)
	res := &RedeemResult{Code: code, Message: reward.Message}

	switch reward.Kind {
	case catalog.CodeSilver:
		p.Silver += reward.Silver
		p.Stats.SilverEarned += reward.Silver
	case catalog.CodeItems:
		if p.Inventory == nil {
			p.Inventory = model.Inventory{}
		}
		for ore, qty := range reward.Items {
			p.Inventory[ore] += qty
		}
	case catalog.CodePowerup:
		pu, ok := e.cat.Powerups[reward.Powerup]
		if ok {
			p.SetPowerup(pu.Effect, pu.Mult, now.Add(pu.Duration))
		}
	case catalog.CodeFreeSpin:
		res.FreeSpin = true
	case catalog.CodeEvent:
		p.SetPowerup(catalog.EffectGoldrush, reward.Mult, now.Add(reward.Duration))
	}
	return res, nil
}
