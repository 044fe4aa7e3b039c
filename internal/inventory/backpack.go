package inventory

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the weight a backpack holds unless configured otherwise.
const DefaultCapacity = 50

// ErrNotEligible is returned when a decision is applied that the gate did not
// offer, e.g. Take All for an item that does not fit.
var ErrNotEligible = errors.New("inventory: decision not eligible")

// Backpack accumulates weight and value up to a fixed capacity.
// Weight never exceeds capacity and value never decreases.
type Backpack struct {
	capacity int
	weight   int
	value    int
}

// NewBackpack creates an empty backpack.
func NewBackpack(capacity int) (*Backpack, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("inventory: capacity must be positive, got %d", capacity)
	}
	return &Backpack{capacity: capacity}, nil
}

// Capacity returns the maximum weight.
func (b *Backpack) Capacity() int { return b.capacity }

// Weight returns the current load.
func (b *Backpack) Weight() int { return b.weight }

// Value returns the accumulated value.
func (b *Backpack) Value() int { return b.value }

// Remaining returns the free capacity.
func (b *Backpack) Remaining() int {
	return b.capacity - b.weight
}

// Full reports whether no capacity is left.
func (b *Backpack) Full() bool {
	return b.weight >= b.capacity
}

// Load returns weight/capacity in [0, 1].
func (b *Backpack) Load() float64 {
	return float64(b.weight) / float64(b.capacity)
}

// Eligible returns the choices on offer for an item. It is computed from the
// current load on every call and has no side effects.
func (b *Backpack) Eligible(item Item) Choices {
	remaining := b.Remaining()
	switch {
	case remaining >= item.Weight:
		return NewChoices(TakeAll, TakePartial, Skip)
	case remaining > 0:
		return NewChoices(TakePartial, Skip)
	default:
		return NewChoices(Skip)
	}
}

// Apply validates a decision against the current load and applies it.
// On error the backpack is unchanged.
func (b *Backpack) Apply(item Item, d Decision) (Outcome, error) {
	out := Outcome{Decision: d, Item: item}
	if err := item.Validate(); err != nil {
		return out, err
	}

	switch d.Choice {
	case Skip:
		return out, nil

	case TakeAll:
		if b.Remaining() < item.Weight {
			return out, fmt.Errorf("%w: %s needs %d, %d left",
				ErrNotEligible, item.Name, item.Weight, b.Remaining())
		}
		out.Requested = item.Weight
		out.Weight = item.Weight
		out.Value = item.Value

	case TakePartial:
		if !d.Fraction.Valid() {
			return out, fmt.Errorf("%w: %v", ErrInvalidFraction, d.Fraction)
		}
		remaining := b.Remaining()
		if remaining <= 0 {
			return out, fmt.Errorf("%w: backpack is full", ErrNotEligible)
		}
		// Value is prorated from the exact share; only the weight is floored.
		out.Requested = d.Fraction.Of(item.Weight)
		out.Clamped = item.Weight*d.Fraction.Num > remaining*d.Fraction.Den
		if out.Clamped {
			out.Weight = remaining
			out.Value = item.Value * remaining / item.Weight
		} else {
			out.Weight = out.Requested
			out.Value = d.Fraction.Of(item.Value)
		}

	default:
		return out, fmt.Errorf("%w: unknown choice %d", ErrNotEligible, d.Choice)
	}

	b.weight += out.Weight
	b.value += out.Value
	out.Consumed = true
	return out, nil
}
