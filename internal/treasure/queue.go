// Package treasure supplies items to the backpack, either as a shuffled
// queue drawn one at a time or as pickups scattered over the world.
package treasure

import (
	"math/rand"

	"github.com/vovakirdan/cave-loot/internal/inventory"
)

// Queue serves a shuffled copy of a catalog strictly first-in first-out.
type Queue struct {
	items []inventory.Item
}

// NewQueue copies the catalog and shuffles it uniformly with rng.
func NewQueue(c inventory.Catalog, rng *rand.Rand) *Queue {
	items := c.Items()
	rng.Shuffle(c.Len(), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return &Queue{items: items}
}

// Draw removes and returns the head. ok is false once the queue is empty.
func (q *Queue) Draw() (item inventory.Item, ok bool) {
	if len(q.items) == 0 {
		return inventory.Item{}, false
	}
	item = q.items[0]
	q.items = q.items[1:]
	return item, true
}

// Len returns the number of items left.
func (q *Queue) Len() int {
	return len(q.items)
}

// Empty reports whether every item has been drawn.
func (q *Queue) Empty() bool {
	return len(q.items) == 0
}
