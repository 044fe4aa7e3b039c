package treasure

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cave-loot/internal/core"
	"github.com/vovakirdan/cave-loot/internal/inventory"
)

func TestQueueDrawsEveryItemOnce(t *testing.T) {
	catalog := inventory.DefaultCatalog()
	q := NewQueue(catalog, rand.New(rand.NewSource(7)))
	require.Equal(t, catalog.Len(), q.Len())

	seen := make(map[string]int)
	for !q.Empty() {
		item, ok := q.Draw()
		require.True(t, ok)
		seen[item.Name]++
	}
	assert.Len(t, seen, catalog.Len())
	for name, n := range seen {
		assert.Equal(t, 1, n, name)
	}

	_, ok := q.Draw()
	assert.False(t, ok, "draw from an empty queue")
}

func TestQueueShuffleIsSeeded(t *testing.T) {
	catalog := inventory.DefaultCatalog()
	order := func(seed int64) []string {
		q := NewQueue(catalog, rand.New(rand.NewSource(seed)))
		var names []string
		for item, ok := q.Draw(); ok; item, ok = q.Draw() {
			names = append(names, item.Name)
		}
		return names
	}
	assert.Equal(t, order(42), order(42))
	assert.ElementsMatch(t, catalog.Names(), order(42))
}

func TestQueueDoesNotAliasCatalog(t *testing.T) {
	catalog := inventory.DefaultCatalog()
	q := NewQueue(catalog, rand.New(rand.NewSource(1)))
	q.Draw()
	assert.Equal(t, "Gold Nugget", catalog.Items()[0].Name)
	assert.Equal(t, 10, catalog.Len())
}

func defaultSpawner() Spawner {
	return Spawner{
		Count:     10,
		Size:      20,
		Area:      core.NewRect(0, 100, 770, 300),
		ValueMin:  5,
		ValueMax:  34,
		WeightMin: 2,
		WeightMax: 19,
		Names:     inventory.DefaultCatalog().Names(),
	}
}

func TestSpawnerRanges(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		field, err := defaultSpawner().Spawn(rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Equal(t, 10, field.Len())

		for _, p := range field.All() {
			assert.GreaterOrEqual(t, p.Item.Value, 5)
			assert.LessOrEqual(t, p.Item.Value, 34)
			assert.GreaterOrEqual(t, p.Item.Weight, 2)
			assert.LessOrEqual(t, p.Item.Weight, 19)
			assert.True(t, p.Item.Category.Valid())
			assert.GreaterOrEqual(t, p.Bounds.X, 0)
			assert.Less(t, p.Bounds.X, 770)
			assert.GreaterOrEqual(t, p.Bounds.Y, 100)
			assert.Less(t, p.Bounds.Y, 400)
			assert.Equal(t, 20, p.Bounds.W)
		}
	}
}

func TestSpawnerErrors(t *testing.T) {
	s := defaultSpawner()
	s.Names = nil
	_, err := s.Spawn(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoNames)

	s = defaultSpawner()
	s.WeightMin, s.WeightMax = 0, 0
	_, err = s.Spawn(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, inventory.ErrInvalidItem)
}

func fieldOf(rects ...core.Rect) *Field {
	pickups := make([]Pickup, len(rects))
	for i, r := range rects {
		pickups[i] = Pickup{
			Item:   inventory.Item{Name: "Coin", Value: 8, Weight: 1},
			Bounds: r,
		}
	}
	return NewField(pickups)
}

func TestFirstHitReturnsOnlyTheFirst(t *testing.T) {
	f := fieldOf(
		core.NewRect(500, 0, 20, 20),
		core.NewRect(110, 440, 20, 20),
		core.NewRect(120, 450, 20, 20),
	)
	actor := core.NewRect(100, 430, 50, 70)

	p, ok := f.FirstHit(actor)
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)

	require.True(t, f.Remove(p.ID))
	p, ok = f.FirstHit(actor)
	require.True(t, ok)
	assert.Equal(t, 2, p.ID, "the other overlapping pickup waits for the next tick")

	assert.False(t, f.Remove(1), "already removed")
}

func TestDeclineNeedsRevisit(t *testing.T) {
	f := fieldOf(core.NewRect(110, 440, 20, 20))
	actor := core.NewRect(100, 430, 50, 70)

	p, ok := f.FirstHit(actor)
	require.True(t, ok)
	f.Decline(p.ID)

	_, ok = f.FirstHit(actor)
	assert.False(t, ok, "skipped pickup is not re-offered while still touching")

	f.Refresh(actor)
	_, ok = f.FirstHit(actor)
	assert.False(t, ok, "refresh while overlapping keeps the mark")

	away := core.NewRect(300, 430, 50, 70)
	f.Refresh(away)
	_, ok = f.FirstHit(actor)
	assert.True(t, ok, "coming back offers it again")
	assert.Equal(t, 1, f.Len(), "skip never removes")
}
