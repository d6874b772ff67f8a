package economy

import (
	"time"

	"github.com/minerco/server/model"
)

const adminSilverGrant = 999_999

// GrantSilver is the admin currency override. It requires the record's
// admin flag; granting the flag itself is a handler concern gated on
// the shared admin key.
func (e *Engine) GrantSilver(p *model.Player) (int64, error) {
	if !p.IsAdmin {
		return 0, ErrForbidden
	}
	p.Silver += adminSilverGrant
	return p.Silver, nil
}

// GrantAllPowerups is the admin modifier override: every shop powerup
// at its catalog multiplier for ten minutes.
func (e *Engine) GrantAllPowerups(p *model.Player, now time.Time) error {
	if !p.IsAdmin {
		return ErrForbidden
	}
	until := now.Add(10 * time.Minute)
	for _, pu := range e.cat.Powerups {
		p.SetPowerup(pu.Effect, pu.Mult, until)
	}
	return nil
}
