package cave

import "github.com/vovakirdan/cave-loot/internal/session"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      int
	State     session.State
	Reason    session.Reason
	Score     int
	ActorX    int
	ActorY    int
	ActorVY   int
	Jumping   bool
	Pickups   int
	Enemies   int
	EnemyXs   []int
	Weight    int
	Value     int
	Suspended bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	r := g.round
	xs := make([]int, len(r.Enemies))
	for i, e := range r.Enemies {
		xs[i] = e.X
	}
	return Snapshot{
		Tick:      g.life.Ticks(),
		State:     g.life.State(),
		Reason:    g.life.Reason(),
		Score:     r.Score,
		ActorX:    r.Actor.X,
		ActorY:    r.Actor.Y,
		ActorVY:   r.Actor.VY,
		Jumping:   r.Actor.Jumping,
		Pickups:   r.Pickups.Len(),
		Enemies:   len(r.Enemies),
		EnemyXs:   xs,
		Weight:    r.Backpack.Weight(),
		Value:     r.Backpack.Value(),
		Suspended: g.exchange != nil,
	}
}
