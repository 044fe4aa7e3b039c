// Package config provides YAML-based game configuration loading and
// difficulty presets for the cave loot games.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cave-loot/internal/inventory"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LootConfig contains all configuration for the Cave Loot Challenge game.
type LootConfig struct {
	Backpack BackpackConfig `yaml:"backpack"`
	Catalog  []ItemConfig   `yaml:"catalog"`
}

// BackpackConfig defines the knapsack limits.
type BackpackConfig struct {
	Capacity int `yaml:"capacity" validate:"gt=0"`
}

// ItemConfig is one catalog entry as written in YAML.
type ItemConfig struct {
	Name     string `yaml:"name"`
	Value    int    `yaml:"value"`
	Weight   int    `yaml:"weight"`
	Category string `yaml:"category"`
}

// CaveConfig contains all configuration for the Cave Adventure game.
// Distances are logical world units; the renderer scales them to cells.
type CaveConfig struct {
	World      CaveWorld        `yaml:"world"`
	Physics    CavePhysics      `yaml:"physics"`
	Player     CavePlayer       `yaml:"player"`
	Platforms  []RectConfig     `yaml:"platforms" validate:"dive"`
	Pickups    CavePickups      `yaml:"pickups"`
	Enemies    CaveEnemies      `yaml:"enemies"`
	Scoring    CaveScoring      `yaml:"scoring"`
	Backpack   BackpackConfig   `yaml:"backpack"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CaveWorld is the size of the play field.
type CaveWorld struct {
	Width  int `yaml:"width" validate:"gt=0"`
	Height int `yaml:"height" validate:"gt=0"`
}

// CavePhysics holds the frame-coupled integer physics constants.
type CavePhysics struct {
	Gravity      int `yaml:"gravity" validate:"gt=0"`
	JumpStrength int `yaml:"jump_strength" validate:"gt=0"`
	MoveSpeed    int `yaml:"move_speed" validate:"gte=0"`
	LandingBand  int `yaml:"landing_band" validate:"gt=0"` // Depth of a platform's top that catches the feet
}

// CavePlayer defines the actor's spawn and size.
type CavePlayer struct {
	X         int `yaml:"x"`
	Y         int `yaml:"y"`
	Width     int `yaml:"width" validate:"gt=0"`
	Height    int `yaml:"height" validate:"gt=0"`
	AnimEvery int `yaml:"anim_every" validate:"gt=0"` // Ticks per run-animation frame
}

// RectConfig is a rectangle in world units.
type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w" validate:"gt=0"`
	H int `yaml:"h" validate:"gt=0"`
}

// CavePickups defines how world treasure is spawned.
type CavePickups struct {
	Count     int        `yaml:"count" validate:"gte=0"`
	Size      int        `yaml:"size" validate:"gt=0"`
	Field     RectConfig `yaml:"field" validate:"-"` // Area pickup top-left corners are drawn from; may be a point
	ValueMin  int        `yaml:"value_min" validate:"gte=0"`
	ValueMax  int        `yaml:"value_max" validate:"gtefield=ValueMin"`
	WeightMin int        `yaml:"weight_min" validate:"gt=0"`
	WeightMax int        `yaml:"weight_max" validate:"gtefield=WeightMin"`
	Names     []string   `yaml:"names"` // Empty means the default catalog names
}

// CaveEnemies defines the orc patrol.
type CaveEnemies struct {
	Count     int `yaml:"count" validate:"gte=0"`
	Width     int `yaml:"width" validate:"gt=0"`
	Height    int `yaml:"height" validate:"gt=0"`
	Y         int `yaml:"y"`
	MinX      int `yaml:"min_x"` // Leftmost spawn x, keeps orcs off the player spawn
	Speed     int `yaml:"speed" validate:"gte=0"`
	AnimEvery int `yaml:"anim_every" validate:"gt=0"`
	Frames    int `yaml:"frames" validate:"gt=0"`
}

// CaveScoring defines score bonuses and how long item toasts stay up.
type CaveScoring struct {
	TakeAll        int `yaml:"take_all" validate:"gte=0"`
	TakePartial    int `yaml:"take_partial" validate:"gte=0"`
	Stomp          int `yaml:"stomp" validate:"gte=0"`
	ToastTicks     int `yaml:"toast_ticks" validate:"gte=0"`
	SkipToastTicks int `yaml:"skip_toast_ticks" validate:"gte=0"`
}

// DifficultyConfig defines the optional enemy speed progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a round.
type ProgressionConfig struct {
	Type  string `yaml:"type" validate:"omitempty,oneof=score time none"`
	MaxAt int    `yaml:"max_at" validate:"gte=0"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
}

// Validate checks the loot config.
func (c LootConfig) Validate() error {
	if err := checkFields(c); err != nil {
		return err
	}
	if _, err := c.BuildCatalog(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// BuildCatalog converts the YAML catalog into a validated inventory catalog.
// An empty catalog yields the default one.
func (c LootConfig) BuildCatalog() (inventory.Catalog, error) {
	if len(c.Catalog) == 0 {
		return inventory.DefaultCatalog(), nil
	}
	items := make([]inventory.Item, 0, len(c.Catalog))
	for _, ic := range c.Catalog {
		cat, err := inventory.ParseCategory(ic.Category)
		if err != nil {
			return inventory.Catalog{}, err
		}
		items = append(items, inventory.Item{
			Name:     ic.Name,
			Value:    ic.Value,
			Weight:   ic.Weight,
			Category: cat,
		})
	}
	return inventory.NewCatalog(items)
}

// Validate checks the cave config for values the physics cannot work with.
// Field ranges are declared in the struct tags; sizes that depend on each
// other are checked here.
func (c CaveConfig) Validate() error {
	if err := checkFields(c); err != nil {
		return err
	}
	switch {
	case c.Player.Width > c.World.Width:
		return fmt.Errorf("%w: player wider than world", ErrInvalid)
	case c.Enemies.Width > c.World.Width:
		return fmt.Errorf("%w: enemy wider than world", ErrInvalid)
	}
	return nil
}

// PickupNames returns the configured names or the default catalog's names.
func (c CaveConfig) PickupNames() []string {
	if len(c.Pickups.Names) > 0 {
		return c.Pickups.Names
	}
	return inventory.DefaultCatalog().Names()
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings return "",
// which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
