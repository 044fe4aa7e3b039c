package config

import (
	_ "embed"
)

//go:embed defaults/loot.yaml
var defaultLootYAML []byte

//go:embed defaults/cave.yaml
var defaultCaveYAML []byte

// DefaultLootConfig returns the default Cave Loot Challenge configuration.
// The catalog is left empty and resolves to inventory.DefaultCatalog.
func DefaultLootConfig() LootConfig {
	return LootConfig{
		Backpack: BackpackConfig{Capacity: 50},
	}
}

// DefaultCaveConfig returns the default Cave Adventure configuration.
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		World: CaveWorld{Width: 800, Height: 600},
		Physics: CavePhysics{
			Gravity:      1,
			JumpStrength: 15,
			MoveSpeed:    5,
			LandingBand:  10,
		},
		Player: CavePlayer{
			X:         100,
			Y:         430,
			Width:     50,
			Height:    70,
			AnimEvery: 5,
		},
		Platforms: []RectConfig{
			{X: 0, Y: 500, W: 800, H: 30}, // Ground
			{X: 200, Y: 400, W: 150, H: 30},
			{X: 400, Y: 350, W: 150, H: 30},
			{X: 600, Y: 300, W: 150, H: 30},
			{X: 300, Y: 250, W: 150, H: 30},
		},
		Pickups: CavePickups{
			Count:     10,
			Size:      20,
			Field:     RectConfig{X: 0, Y: 100, W: 770, H: 300},
			ValueMin:  5,
			ValueMax:  34,
			WeightMin: 2,
			WeightMax: 19,
		},
		Enemies: CaveEnemies{
			Count:     3,
			Width:     60,
			Height:    60,
			Y:         440,
			MinX:      200,
			Speed:     2,
			AnimEvery: 5,
			Frames:    6,
		},
		Scoring: CaveScoring{
			TakeAll:        10,
			TakePartial:    5,
			Stomp:          20,
			ToastTicks:     120,
			SkipToastTicks: 60,
		},
		Backpack: BackpackConfig{Capacity: 50},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "loot":
		return defaultLootYAML
	case "cave":
		return defaultCaveYAML
	default:
		return nil
	}
}
