package cave

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cave-loot/internal/config"
	"github.com/vovakirdan/cave-loot/internal/core"
	"github.com/vovakirdan/cave-loot/internal/inventory"
	"github.com/vovakirdan/cave-loot/internal/treasure"
)

// Round owns every mutable entity of one play-through. A new Round is built
// for each game; nothing is shared with the previous one.
type Round struct {
	Actor     Actor
	Platforms []core.Rect
	Pickups   *treasure.Field
	Enemies   []Enemy
	Backpack  *inventory.Backpack
	Score     int
	Toast     Toast
}

// Toast is the item info banner shown after a pickup decision.
type Toast struct {
	Item  inventory.Item
	Taken bool
	Ticks int // Remaining display time
}

// Visible reports whether the toast is still up.
func (t Toast) Visible() bool {
	return t.Ticks > 0
}

// NewRound builds a fresh round from configuration.
func NewRound(cfg config.CaveConfig, rng *rand.Rand) (*Round, error) {
	backpack, err := inventory.NewBackpack(cfg.Backpack.Capacity)
	if err != nil {
		return nil, fmt.Errorf("cave: %w", err)
	}

	spawner := treasure.Spawner{
		Count:     cfg.Pickups.Count,
		Size:      cfg.Pickups.Size,
		Area:      rectOf(cfg.Pickups.Field),
		ValueMin:  cfg.Pickups.ValueMin,
		ValueMax:  cfg.Pickups.ValueMax,
		WeightMin: cfg.Pickups.WeightMin,
		WeightMax: cfg.Pickups.WeightMax,
		Names:     cfg.PickupNames(),
	}
	field, err := spawner.Spawn(rng)
	if err != nil {
		return nil, fmt.Errorf("cave: %w", err)
	}

	platforms := make([]core.Rect, len(cfg.Platforms))
	for i, p := range cfg.Platforms {
		platforms[i] = rectOf(p)
	}

	return &Round{
		Actor:     NewActor(cfg.Player.X, cfg.Player.Y, cfg.Player.Width, cfg.Player.Height, cfg.Player.AnimEvery),
		Platforms: platforms,
		Pickups:   field,
		Enemies:   spawnEnemies(cfg.Enemies, cfg.World.Width, rng),
		Backpack:  backpack,
	}, nil
}

// spawnEnemies places orcs on the ground between MinX and the right edge.
func spawnEnemies(ec config.CaveEnemies, worldW int, rng *rand.Rand) []Enemy {
	enemies := make([]Enemy, 0, ec.Count)
	maxX := worldW - ec.Width
	for i := 0; i < ec.Count; i++ {
		x := maxX
		if span := maxX - ec.MinX; span >= 0 {
			x = ec.MinX + rng.Intn(span+1)
		}
		enemies = append(enemies, NewEnemy(x, ec.Y, ec.Width, ec.Height))
	}
	return enemies
}

func rectOf(r config.RectConfig) core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}
