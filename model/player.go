package model

import (
	"time"

	"github.com/minerco/server/game/catalog"
)

// PowerupEntry is one live (or stale) time-limited modifier on a player.
// The entry is live iff UntilMs is strictly in the future; stale entries
// may remain in the map but never contribute to multipliers.
type PowerupEntry struct {
	Mult    float64 `json:"mult"`
	UntilMs int64   `json:"until"`
}

// Live reports whether the entry still contributes at the given time.
func (e PowerupEntry) Live(now time.Time) bool {
	return e.UntilMs > now.UnixMilli()
}

// Stats are the player's cumulative counters. All fields are
// monotonically non-decreasing.
type Stats struct {
	OresMined    int64                     `json:"oresMined"`
	Crits        int64                     `json:"crits"`
	SilverEarned int64                     `json:"silverEarned"`
	SilverSpent  int64                     `json:"silverSpent"`
	Total        map[catalog.OreID]int64   `json:"total"`
}

// Player is the persistent economy state for one account. Nested state
// is stored as typed JSON columns so the structure is enforced by the
// Go types rather than by convention.
type Player struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID int64           `gorm:"uniqueIndex;not null" json:"account_id"`
	Silver    int64           `gorm:"default:0" json:"silver"`
	Pickaxe   catalog.OreID   `gorm:"size:32;not null" json:"pickaxe"`
	Sword     catalog.SwordTier `gorm:"size:32;not null" json:"sword"`

	Inventory Inventory `gorm:"serializer:json" json:"inventory"`
	Powerups  PowerupSet        `gorm:"serializer:json" json:"active_powerups"`
	Pets      []catalog.PetID   `gorm:"serializer:json" json:"pets"`
	UsedCodes []string          `gorm:"serializer:json" json:"used_codes"`
	Stats     Stats             `gorm:"serializer:json" json:"stats"`

	LastDailyMs int64 `gorm:"default:0" json:"last_daily"`
	IsAdmin     bool  `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PowerupSet maps an effect to its active entry.
type PowerupSet map[catalog.Effect]PowerupEntry

// Inventory maps an ore to its held quantity. Quantities are never
// negative after an engine transition.
type Inventory map[catalog.OreID]int64

// NewPlayer returns the starting state for a fresh account: a small coal
// stock, the lowest pickaxe, no sword, empty silver.
func NewPlayer(accountID int64) *Player {
	return &Player{
		AccountID: accountID,
		Silver:    0,
		Pickaxe:   catalog.OreCoal,
		Sword:     catalog.SwordNone,
		Inventory: Inventory{catalog.OreCoal: 10},
		Powerups:  PowerupSet{},
		Pets:      []catalog.PetID{},
		UsedCodes: []string{},
		Stats:     Stats{Total: map[catalog.OreID]int64{}},
	}
}

// HasPet reports whether the player already owns the pet.
func (p *Player) HasPet(id catalog.PetID) bool {
	for _, owned := range p.Pets {
		if owned == id {
			return true
		}
	}
	return false
}

// HasUsedCode reports whether the code was already consumed.
func (p *Player) HasUsedCode(code string) bool {
	for _, used := range p.UsedCodes {
		if used == code {
			return true
		}
	}
	return false
}

// OreQty returns the held quantity of an ore (0 for absent keys).
func (p *Player) OreQty(ore catalog.OreID) int64 {
	return p.Inventory[ore]
}

// AddOre grants ore to the inventory and updates the mined counters.
// qty must be positive.
func (p *Player) AddOre(ore catalog.OreID, qty int64) {
	if p.Inventory == nil {
		p.Inventory = Inventory{}
	}
	p.Inventory[ore] += qty
	p.Stats.OresMined += qty
	if p.Stats.Total == nil {
		p.Stats.Total = map[catalog.OreID]int64{}
	}
	p.Stats.Total[ore] += qty
}

// SetPowerup overwrites the named effect's entry. Durations never stack;
// a re-buy replaces the expiry outright.
func (p *Player) SetPowerup(effect catalog.Effect, mult float64, until time.Time) {
	if p.Powerups == nil {
		p.Powerups = PowerupSet{}
	}
	p.Powerups[effect] = PowerupEntry{Mult: mult, UntilMs: until.UnixMilli()}
}
