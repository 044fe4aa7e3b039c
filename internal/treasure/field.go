package treasure

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cave-loot/internal/core"
	"github.com/vovakirdan/cave-loot/internal/inventory"
)

// Pickup is an item bound to a world position.
type Pickup struct {
	ID     int
	Item   inventory.Item
	Bounds core.Rect

	// declined is set after a skip and cleared once the actor moves off
	// the pickup, so a skipped item is only offered again on a revisit.
	declined bool
}

// Declined reports whether the pickup is waiting for the actor to leave.
func (p Pickup) Declined() bool {
	return p.declined
}

// Field holds the live pickups in spawn order.
type Field struct {
	pickups []Pickup
}

// NewField creates a field from pickups. IDs are reassigned in order.
func NewField(pickups []Pickup) *Field {
	f := &Field{pickups: make([]Pickup, len(pickups))}
	for i, p := range pickups {
		p.ID = i
		f.pickups[i] = p
	}
	return f
}

// FirstHit returns the first non-declined pickup overlapping r. Only one
// pickup is reported per call even when several overlap.
func (f *Field) FirstHit(r core.Rect) (Pickup, bool) {
	for _, p := range f.pickups {
		if !p.declined && p.Bounds.Intersects(r) {
			return p, true
		}
	}
	return Pickup{}, false
}

// Remove consumes a pickup. It reports whether the ID was live.
func (f *Field) Remove(id int) bool {
	for i, p := range f.pickups {
		if p.ID == id {
			f.pickups = append(f.pickups[:i], f.pickups[i+1:]...)
			return true
		}
	}
	return false
}

// Decline leaves a skipped pickup in place but stops it from being offered
// until Refresh sees the actor off it.
func (f *Field) Decline(id int) {
	for i := range f.pickups {
		if f.pickups[i].ID == id {
			f.pickups[i].declined = true
			return
		}
	}
}

// Refresh clears the declined mark of every pickup r no longer overlaps.
func (f *Field) Refresh(r core.Rect) {
	for i := range f.pickups {
		if f.pickups[i].declined && !f.pickups[i].Bounds.Intersects(r) {
			f.pickups[i].declined = false
		}
	}
}

// Len returns the number of live pickups.
func (f *Field) Len() int {
	return len(f.pickups)
}

// Empty reports whether every pickup has been consumed.
func (f *Field) Empty() bool {
	return len(f.pickups) == 0
}

// All returns a copy of the live pickups for rendering.
func (f *Field) All() []Pickup {
	return append([]Pickup(nil), f.pickups...)
}

// ErrNoNames is returned when a spawner has no item names to draw from.
var ErrNoNames = errors.New("treasure: no item names")

// Spawner scatters randomly generated pickups over a rectangle.
// Each pickup gets a random name and an independently drawn category,
// so names and categories do not follow the catalog.
type Spawner struct {
	Count     int
	Size      int
	Area      core.Rect // Range of top-left corners
	ValueMin  int       // Inclusive
	ValueMax  int       // Inclusive
	WeightMin int       // Inclusive
	WeightMax int       // Inclusive
	Names     []string
}

// Spawn builds a new field. Items are validated as they are built, so a
// bad weight range fails here rather than during play.
func (s Spawner) Spawn(rng *rand.Rand) (*Field, error) {
	if len(s.Names) == 0 {
		return nil, ErrNoNames
	}
	if s.ValueMax < s.ValueMin || s.WeightMax < s.WeightMin {
		return nil, fmt.Errorf("%w: empty value or weight range", inventory.ErrInvalidItem)
	}

	pickups := make([]Pickup, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		x := s.Area.X + intn(rng, s.Area.W)
		y := s.Area.Y + intn(rng, s.Area.H)
		item, err := inventory.NewItem(
			s.Names[rng.Intn(len(s.Names))],
			s.ValueMin+rng.Intn(s.ValueMax-s.ValueMin+1),
			s.WeightMin+rng.Intn(s.WeightMax-s.WeightMin+1),
			inventory.Categories[rng.Intn(len(inventory.Categories))],
		)
		if err != nil {
			return nil, fmt.Errorf("treasure: pickup %d: %w", i, err)
		}
		pickups = append(pickups, Pickup{
			Item:   item,
			Bounds: core.NewRect(x, y, s.Size, s.Size),
		})
	}
	return NewField(pickups), nil
}

func intn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}
