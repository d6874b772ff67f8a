package catalog

import "time"

// Powerup shop names.
const (
	PowerupStrength = "2x Strength"
	PowerupLuck     = "2x Luck"
)

// Default returns the production game data.
func Default() *Catalog {
	return New(Catalog{
		Ores: []Ore{
			{ID: OreCoal, Value: 1, Requires: OreCoal},
			{ID: OreCopper, Value: 2, Requires: OreCopper},
			{ID: OreBronze, Value: 3, Requires: OreBronze},
			{ID: OreSilver, Value: 5, Requires: OreSilver},
			{ID: OreGold, Value: 8, Requires: OreGold},
			{ID: OreDiamond, Value: 15, Requires: OreDiamond},
			{ID: OreEmerald, Value: 30, Requires: OreEmerald},
			{ID: OreRainbow, Value: 20, Requires: OreDiamond},
			{ID: OreGoldrush, Value: 0, Requires: OreDiamond},
		},
		PickaxeCosts: map[OreID]map[OreID]int64{
			OreCoal:    {OreCoal: 10},
			OreCopper:  {OreCoal: 20},
			OreBronze:  {OreCopper: 30},
			OreSilver:  {OreBronze: 40},
			OreGold:    {OreSilver: 50},
			OreDiamond: {OreGold: 60},
			OreEmerald: {OreDiamond: 100},
		},
		Powerups: map[string]Powerup{
			PowerupStrength: {Name: PowerupStrength, Effect: EffectStrength, Mult: 2, Duration: 120 * time.Second, Price: 50},
			PowerupLuck:     {Name: PowerupLuck, Effect: EffectLuck, Mult: 2, Duration: 120 * time.Second, Price: 75},
		},
		Swords: []Sword{
			{Tier: SwordNone, CritChance: 0, Price: 0},
			{Tier: SwordIron, CritChance: 5, Price: 100},
			{Tier: SwordSteel, CritChance: 12, Price: 300},
			{Tier: SwordMythril, CritChance: 20, Price: 800},
		},
		Pets: []Pet{
			{ID: "mole", Name: "Mole", Rarity: RarityCommon, Effects: map[Effect]float64{EffectStrength: 1.25}},
			{ID: "cat", Name: "Lucky Cat", Rarity: RarityRare, Effects: map[Effect]float64{EffectLuck: 1.5}},
			{ID: "parrot", Name: "Parrot", Rarity: RarityUncommon, Effects: map[Effect]float64{EffectSell: 1.1}},
			{ID: "fox", Name: "Amber Fox", Rarity: RarityEpic, Effects: map[Effect]float64{EffectCrit: 0.08}},
			{ID: "tortoise", Name: "Tortoise", Rarity: RarityCommon, Effects: map[Effect]float64{EffectSustain: 1}},
		},
		RarityWeights: []RarityWeight{
			{Rarity: RarityCommon, Weight: 56},
			{Rarity: RarityUncommon, Weight: 24},
			{Rarity: RarityRare, Weight: 14},
			{Rarity: RarityEpic, Weight: 6},
		},
		Codes: map[string]CodeReward{
			"WELCOME":  {Kind: CodeSilver, Silver: 200, Message: "Welcome bonus: +200 Silver"},
			"LUCKY":    {Kind: CodePowerup, Powerup: PowerupLuck, Message: "+2x Luck (120s)"},
			"SHINY":    {Kind: CodeItems, Items: map[OreID]int64{OreDiamond: 5}, Message: "Diamonds x5"},
			"FREEPET":  {Kind: CodeFreeSpin, Message: "Free pet spin"},
			"GOLDRUSH": {Kind: CodeEvent, Mult: 2, Duration: 3 * time.Minute, Message: "Gold Rush for 3 min!"},
		},
		SpinPrice:       150,
		DuplicateRefund: 50,
		DailyReward:     200,
		DailyCooldown:   24 * time.Hour,
		DailyPowerupDur: 60 * time.Second,
	})
}
