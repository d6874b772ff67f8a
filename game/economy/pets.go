package economy

import (
	"github.com/minerco/server/game/catalog"
	"github.com/minerco/server/model"
)

// SpinResult reports a pet spin.
type SpinResult struct {
	Pet       catalog.Pet `json:"pet"`
	Duplicate bool        `json:"duplicate"`
	Refund    int64       `json:"refund"`
}

// SpinPet rolls one pet: a weighted rarity draw followed by a uniform
// draw within that rarity — exactly two draws, in that order, so a
// scripted Rand reproduces any outcome. A duplicate converts to the
// fixed silver refund instead of growing the owned set.
func (e *Engine) SpinPet(p *model.Player, free bool, rng Rand) (*SpinResult, error) {
	if !free {
		if p.Silver < e.cat.SpinPrice {
			return nil, ErrInsufficientSilver
		}
		p.Silver -= e.cat.SpinPrice
		p.Stats.SilverSpent += e.cat.SpinPrice
	}

	rarity := e.rollRarity(rng)
	pool := e.cat.PetsByRarity(rarity)
	pet := pool[rng.Intn(len(pool))]

	if p.HasPet(pet.ID) {
		p.Silver += e.cat.DuplicateRefund
		return &SpinResult{Pet: pet, Duplicate: true, Refund: e.cat.DuplicateRefund}, nil
	}
	p.Pets = append(p.Pets, pet.ID)
	return &SpinResult{Pet: pet}, nil
}

// rollRarity draws a rarity from the weighted distribution, walking the
// buckets in catalog order.
func (e *Engine) rollRarity(rng Rand) catalog.Rarity {
	total := 0
	for _, w := range e.cat.RarityWeights {
		total += w.Weight
	}
	r := rng.Intn(total)
	for _, w := range e.cat.RarityWeights {
		if r < w.Weight {
			return w.Rarity
		}
		r -= w.Weight
	}
	// Unreachable with positive weights.
	return e.cat.RarityWeights[len(e.cat.RarityWeights)-1].Rarity
}
