package catalog

import "time"

// OreID identifies an ore type. Ore IDs double as pickaxe tier names:
// a pickaxe of tier T mines every ore whose requirement is at or below T
// in the ore table's order.
type OreID string

const (
	OreCoal     OreID = "coal"
	OreCopper   OreID = "copper"
	OreBronze   OreID = "bronze"
	OreSilver   OreID = "silver"
	OreGold     OreID = "gold"
	OreDiamond  OreID = "diamond"
	OreEmerald  OreID = "emerald"
	OreRainbow  OreID = "rainbow"
	OreGoldrush OreID = "goldrush"
)

// Effect names a multiplicative (or, for crit, additive) bonus channel.
type Effect string

const (
	EffectStrength Effect = "strength"
	EffectLuck     Effect = "luck"
	EffectSell     Effect = "sell"
	EffectCrit     Effect = "crit"
	EffectSustain  Effect = "sustain"
	// EffectGoldrush is the time-boxed event channel: while live, every
	// gold grant from mining is multiplied by its value.
	EffectGoldrush Effect = "goldrush"
)

// SwordTier identifies an equipped sword.
type SwordTier string

const (
	SwordNone    SwordTier = "none"
	SwordIron    SwordTier = "iron"
	SwordSteel   SwordTier = "steel"
	SwordMythril SwordTier = "mythril"
)

// PetID identifies a collectible pet.
type PetID string

// Rarity classifies a pet for the spin draw.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

// Ore is one row of the ore table. Requires names the pickaxe tier
// needed to mine it.
type Ore struct {
	ID       OreID `json:"id"`
	Value    int64 `json:"value"`
	Requires OreID `json:"requires"`
}

// Powerup is a purchasable time-limited multiplier.
type Powerup struct {
	Name     string        `json:"name"`
	Effect   Effect        `json:"effect"`
	Mult     float64       `json:"mult"`
	Duration time.Duration `json:"duration"`
	Price    int64         `json:"price"`
}

// Sword is one row of the sword table. CritChance is a base
// critical-hit percentage on the 0-100 scale.
type Sword struct {
	Tier       SwordTier `json:"tier"`
	CritChance float64   `json:"crit_chance"`
	Price      int64     `json:"price"`
}

// Pet is a collectible granting passive effect bonuses. Multiplicative
// effects (strength, luck, sell) are factors; crit is an additive
// fraction converted to percentage points by the resolver.
type Pet struct {
	ID      PetID              `json:"id"`
	Name    string             `json:"name"`
	Rarity  Rarity             `json:"rarity"`
	Effects map[Effect]float64 `json:"effects"`
}

// RarityWeight is one bucket of the rarity distribution. Order matters:
// the spin draw walks the slice, so a fixed order keeps rolls
// reproducible under an injected random source.
type RarityWeight struct {
	Rarity Rarity `json:"rarity"`
	Weight int    `json:"weight"`
}

// CodeKind tags a redeemable-code reward variant.
type CodeKind string

const (
	CodeSilver   CodeKind = "silver"
	CodePowerup  CodeKind = "powerup"
	CodeItems    CodeKind = "items"
	CodeFreeSpin CodeKind = "free_spin"
	CodeEvent    CodeKind = "event"
)

// CodeReward describes what a code grants. Exactly the fields implied
// by Kind are meaningful.
type CodeReward struct {
	Kind     CodeKind        `json:"kind"`
	Silver   int64           `json:"silver,omitempty"`
	Powerup  string          `json:"powerup,omitempty"`
	Items    map[OreID]int64 `json:"items,omitempty"`
	Mult     float64         `json:"mult,omitempty"`
	Duration time.Duration   `json:"duration,omitempty"`
	Message  string          `json:"message"`
}

// Catalog is the immutable game data. Construct once at startup (or per
// test) and pass by reference; nothing mutates it after New.
type Catalog struct {
	Ores          []Ore
	PickaxeCosts  map[OreID]map[OreID]int64
	Powerups      map[string]Powerup
	Swords        []Sword
	Pets          []Pet
	RarityWeights []RarityWeight
	Codes         map[string]CodeReward

	SpinPrice       int64
	DuplicateRefund int64
	DailyReward     int64
	DailyCooldown   time.Duration
	DailyPowerupDur time.Duration

	oreIndex   map[OreID]int
	swordIndex map[SwordTier]int
	petIndex   map[PetID]int
}

// New builds the lookup indexes for a catalog. Call it on any literal
// before use; Default already does.
func New(c Catalog) *Catalog {
	c.oreIndex = make(map[OreID]int, len(c.Ores))
	for i, o := range c.Ores {
		c.oreIndex[o.ID] = i
	}
	c.swordIndex = make(map[SwordTier]int, len(c.Swords))
	for i, s := range c.Swords {
		c.swordIndex[s.Tier] = i
	}
	c.petIndex = make(map[PetID]int, len(c.Pets))
	for i, p := range c.Pets {
		c.petIndex[p.ID] = i
	}
	return &c
}

// Ore returns the ore row for the given ID.
func (c *Catalog) Ore(id OreID) (Ore, bool) {
	i, ok := c.oreIndex[id]
	if !ok {
		return Ore{}, false
	}
	return c.Ores[i], true
}

// TierIndex returns the position of an ore/pickaxe tier in the ore
// table order, or -1 if unknown.
func (c *Catalog) TierIndex(id OreID) int {
	i, ok := c.oreIndex[id]
	if !ok {
		return -1
	}
	return i
}

// CanMine reports whether a pickaxe of the given tier unlocks the ore.
func (c *Catalog) CanMine(pickaxe OreID, ore OreID) bool {
	o, ok := c.Ore(ore)
	if !ok {
		return false
	}
	return c.TierIndex(pickaxe) >= c.TierIndex(o.Requires)
}

// BaseOres returns the ores a rainbow grant can resolve to: every ore
// before rainbow in table order.
func (c *Catalog) BaseOres() []OreID {
	end := c.TierIndex(OreRainbow)
	if end < 0 {
		end = len(c.Ores)
	}
	out := make([]OreID, 0, end)
	for _, o := range c.Ores[:end] {
		out = append(out, o.ID)
	}
	return out
}

// Sword returns the sword row for the given tier.
func (c *Catalog) Sword(tier SwordTier) (Sword, bool) {
	i, ok := c.swordIndex[tier]
	if !ok {
		return Sword{}, false
	}
	return c.Swords[i], true
}

// SwordIndex returns the position of a sword tier, or -1 if unknown.
func (c *Catalog) SwordIndex(tier SwordTier) int {
	i, ok := c.swordIndex[tier]
	if !ok {
		return -1
	}
	return i
}

// Pet returns the pet definition for the given ID.
func (c *Catalog) Pet(id PetID) (Pet, bool) {
	i, ok := c.petIndex[id]
	if !ok {
		return Pet{}, false
	}
	return c.Pets[i], true
}

// PetsByRarity returns the pool restricted to one rarity, in table order.
func (c *Catalog) PetsByRarity(r Rarity) []Pet {
	var out []Pet
	for _, p := range c.Pets {
		if p.Rarity == r {
			out = append(out, p)
		}
	}
	return out
}
