// Package inventory implements the backpack: a bounded-capacity accumulator
// of weighted, valued treasure with take-all, take-part and skip decisions.
package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidItem is returned when an item cannot be prorated or displayed.
var ErrInvalidItem = errors.New("inventory: invalid item")

// Category groups items for display. It selects the sprite and the
// placeholder shape.
type Category int

const (
	Resources Category = iota
	DungeonProps
	Esoteric
	Tools
)

// Categories lists every category in display order.
var Categories = [...]Category{Resources, DungeonProps, Esoteric, Tools}

// String returns the category name used in catalogs and sprite atlases.
func (c Category) String() string {
	switch c {
	case Resources:
		return "Resources"
	case DungeonProps:
		return "Dungeon_Props"
	case Esoteric:
		return "Esoteric"
	case Tools:
		return "Tools"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	return c >= Resources && c <= Tools
}

// ParseCategory parses a category name. Matching ignores case, and
// "DungeonProps" is accepted as well as "Dungeon_Props".
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for _, c := range Categories {
		if strings.ToLower(strings.ReplaceAll(c.String(), "_", "")) == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("inventory: unknown category %q", s)
}

// Item is an immutable treasure template or pickup payload.
type Item struct {
	Name     string
	Value    int
	Weight   int
	Category Category
}

// NewItem builds a validated item.
func NewItem(name string, value, weight int, category Category) (Item, error) {
	it := Item{Name: name, Value: value, Weight: weight, Category: category}
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	return it, nil
}

// Validate rejects items that would break proration: a zero weight would
// divide by zero when a part of the item is taken.
func (it Item) Validate() error {
	switch {
	case strings.TrimSpace(it.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	case it.Weight <= 0:
		return fmt.Errorf("%w: %q has weight %d", ErrInvalidItem, it.Name, it.Weight)
	case it.Value < 0:
		return fmt.Errorf("%w: %q has value %d", ErrInvalidItem, it.Name, it.Value)
	case !it.Category.Valid():
		return fmt.Errorf("%w: %q has %v", ErrInvalidItem, it.Name, it.Category)
	}
	return nil
}
