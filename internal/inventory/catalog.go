package inventory

import "fmt"

// Catalog is the fixed set of item templates available to a round.
// It is validated once at construction, never at consumption time.
type Catalog struct {
	items []Item
}

// NewCatalog validates and copies the given items.
func NewCatalog(items []Item) (Catalog, error) {
	if len(items) == 0 {
		return Catalog{}, fmt.Errorf("%w: empty catalog", ErrInvalidItem)
	}
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if seen[it.Name] {
			return Catalog{}, fmt.Errorf("%w: duplicate name %q", ErrInvalidItem, it.Name)
		}
		seen[it.Name] = true
	}
	return Catalog{items: append([]Item(nil), items...)}, nil
}

// DefaultCatalog returns the ten cave treasures.
func DefaultCatalog() Catalog {
	return Catalog{items: []Item{
		{Name: "Gold Nugget", Value: 10, Weight: 5, Category: Resources},
		{Name: "Ancient Relic", Value: 20, Weight: 8, Category: Esoteric},
		{Name: "Gemstone", Value: 15, Weight: 3, Category: Resources},
		{Name: "Magic Scroll", Value: 25, Weight: 1, Category: Esoteric},
		{Name: "Silver Chalice", Value: 18, Weight: 7, Category: DungeonProps},
		{Name: "Enchanted Sword", Value: 30, Weight: 12, Category: Tools},
		{Name: "Crystal Orb", Value: 22, Weight: 10, Category: Esoteric},
		{Name: "Golden Crown", Value: 35, Weight: 8, Category: DungeonProps},
		{Name: "Rare Spices", Value: 12, Weight: 2, Category: Resources},
		{Name: "Ancient Coin", Value: 8, Weight: 1, Category: Resources},
	}}
}

// Len returns the number of templates.
func (c Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the templates in catalog order.
func (c Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Names returns the template names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.items))
	for i, it := range c.items {
		names[i] = it.Name
	}
	return names
}
