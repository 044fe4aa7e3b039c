package inventory

import (
	"errors"
	"fmt"
)

// ErrInvalidFraction is returned for a partial take outside (0, 1].
var ErrInvalidFraction = errors.New("inventory: invalid fraction")

// Choice is one of the three ways to respond to a found item.
// The zero value is Skip, so an unset decision is always safe.
type Choice uint8

const (
	Skip Choice = iota
	TakeAll
	TakePartial
)

// String returns the label shown on the prompt button.
func (c Choice) String() string {
	switch c {
	case TakeAll:
		return "Take All"
	case TakePartial:
		return "Take Part"
	default:
		return "Skip"
	}
}

// Choices is a set of choices.
type Choices uint8

// NewChoices builds a set.
func NewChoices(cs ...Choice) Choices {
	var set Choices
	for _, c := range cs {
		set |= 1 << c
	}
	return set
}

// Has reports membership.
func (s Choices) Has(c Choice) bool {
	return s&(1<<c) != 0
}

// List returns the members in prompt order: Take All, Take Part, Skip.
func (s Choices) List() []Choice {
	out := make([]Choice, 0, 3)
	for _, c := range []Choice{TakeAll, TakePartial, Skip} {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Fraction is an exact rational share of an item, 0 < Num <= Den.
type Fraction struct {
	Num, Den int
}

// The partial-take menu.
var (
	Quarter       = Fraction{1, 4}
	Third         = Fraction{1, 3}
	Half          = Fraction{1, 2}
	ThreeQuarters = Fraction{3, 4}
)

// MenuFractions lists the partial-take menu in display order.
var MenuFractions = []Fraction{Quarter, Third, Half, ThreeQuarters}

// FillFraction is the share of an item that exactly fills the remaining
// capacity, capped at the whole item.
func FillFraction(remaining, weight int) Fraction {
	if weight <= 0 {
		return Fraction{}
	}
	return Fraction{Num: min(max(remaining, 0), weight), Den: weight}
}

// Valid reports whether the fraction lies in (0, 1].
func (f Fraction) Valid() bool {
	return f.Den > 0 && f.Num > 0 && f.Num <= f.Den
}

// Of returns floor(n * f).
func (f Fraction) Of(n int) int {
	if f.Den == 0 {
		return 0
	}
	return n * f.Num / f.Den
}

// String returns "num/den".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Label returns the menu text for the fraction.
func (f Fraction) Label() string {
	return f.String() + " of item"
}

// Decision is the player's answer to an offer. The zero value skips.
type Decision struct {
	Choice   Choice
	Fraction Fraction // Only used by TakePartial
}

// SkipItem returns a skip decision.
func SkipItem() Decision {
	return Decision{Choice: Skip}
}

// TakeWhole returns a take-all decision.
func TakeWhole() Decision {
	return Decision{Choice: TakeAll}
}

// TakeShare returns a partial decision for the given fraction.
func TakeShare(f Fraction) Decision {
	return Decision{Choice: TakePartial, Fraction: f}
}

// Outcome reports what a decision did to the backpack.
type Outcome struct {
	Decision Decision
	Item     Item
	// Requested is the weight the decision asked for before clamping.
	Requested int
	// Weight and Value are what was actually admitted.
	Weight int
	Value  int
	// Clamped is set when the requested share did not fit and only the
	// remaining capacity was taken. Callers surface this to the player.
	Clamped bool
	// Consumed reports whether the pickup leaves the world.
	Consumed bool
}
