package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, value, weight int) Item {
	t.Helper()
	it, err := NewItem(name, value, weight, Resources)
	require.NoError(t, err)
	return it
}

// loaded returns a backpack with the given capacity already holding weight.
func loaded(t *testing.T, capacity, weight int) *Backpack {
	t.Helper()
	b, err := NewBackpack(capacity)
	require.NoError(t, err)
	if weight > 0 {
		_, err := b.Apply(mustItem(t, "Ballast", 0, weight), TakeWhole())
		require.NoError(t, err)
	}
	return b
}

func TestNewBackpackRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewBackpack(0)
	assert.Error(t, err)
	_, err = NewBackpack(-5)
	assert.Error(t, err)
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name   string
		weight int
		item   int
		want   []Choice
	}{
		{"fits with room", 0, 30, []Choice{TakeAll, TakePartial, Skip}},
		{"fits exactly", 40, 10, []Choice{TakeAll, TakePartial, Skip}},
		{"does not fit", 45, 10, []Choice{TakePartial, Skip}},
		{"full", 50, 1, []Choice{Skip}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := loaded(t, 50, tc.weight)
			assert.Equal(t, tc.want, b.Eligible(mustItem(t, "Orb", 20, tc.item)).List())
		})
	}
}

func TestEligibleNeverMutates(t *testing.T) {
	b := loaded(t, 50, 45)
	item := mustItem(t, "Crystal Orb", 22, 10)
	for i := 0; i < 100; i++ {
		b.Eligible(item)
	}
	assert.Equal(t, 45, b.Weight())
	assert.Equal(t, 0, b.Value())
}

func TestTakeAll(t *testing.T) {
	b := loaded(t, 50, 0)
	out, err := b.Apply(mustItem(t, "Chest", 25, 30), TakeWhole())
	require.NoError(t, err)

	assert.Equal(t, 30, b.Weight())
	assert.Equal(t, 25, b.Value())
	assert.True(t, out.Consumed)
	assert.False(t, out.Clamped)
}

func TestTakeAllNotEligible(t *testing.T) {
	b := loaded(t, 50, 45)
	_, err := b.Apply(mustItem(t, "Sword", 30, 12), TakeWhole())

	require.ErrorIs(t, err, ErrNotEligible)
	assert.Equal(t, 45, b.Weight(), "rejected decision must not mutate")
	assert.Equal(t, 0, b.Value())
}

func TestTakePartialFillFraction(t *testing.T) {
	b := loaded(t, 50, 45)
	item := mustItem(t, "Relic", 20, 10)

	require.Equal(t, []Choice{TakePartial, Skip}, b.Eligible(item).List())

	f := FillFraction(b.Remaining(), item.Weight)
	assert.Equal(t, Fraction{5, 10}, f)

	out, err := b.Apply(item, TakeShare(f))
	require.NoError(t, err)
	assert.Equal(t, 50, b.Weight())
	assert.Equal(t, 10, b.Value())
	assert.Equal(t, 5, out.Weight)
	assert.False(t, out.Clamped)
	assert.True(t, b.Full())
}

func TestTakePartialMenuFractions(t *testing.T) {
	item := mustItem(t, "Crown", 35, 8)
	tests := []struct {
		f          Fraction
		wantWeight int
		wantValue  int
	}{
		{Quarter, 2, 8},
		{Third, 2, 11},
		{Half, 4, 17},
		{ThreeQuarters, 6, 26},
	}
	for _, tc := range tests {
		t.Run(tc.f.String(), func(t *testing.T) {
			b := loaded(t, 50, 0)
			out, err := b.Apply(item, TakeShare(tc.f))
			require.NoError(t, err)
			assert.Equal(t, tc.wantWeight, out.Weight)
			assert.Equal(t, tc.wantValue, out.Value)
			assert.Equal(t, tc.f.Of(item.Value), out.Value)
		})
	}
}

func TestTakePartialClampsToRemaining(t *testing.T) {
	b := loaded(t, 50, 48)
	item := mustItem(t, "Sword", 30, 12)

	out, err := b.Apply(item, TakeShare(ThreeQuarters))
	require.NoError(t, err)

	assert.True(t, out.Clamped)
	assert.Equal(t, 9, out.Requested)
	assert.Equal(t, 2, out.Weight)
	assert.Equal(t, 5, out.Value)
	assert.Equal(t, 50, b.Weight())
	assert.True(t, out.Consumed)

	notice := ClampNotice(out)
	assert.Equal(t, "Backpack Limit Reached", notice.Title)
	assert.Contains(t, notice.Lines[0], "only take 2 weight")
}

func TestTakePartialZeroAdmittedStillConsumes(t *testing.T) {
	b := loaded(t, 50, 0)
	out, err := b.Apply(mustItem(t, "Coin", 8, 1), TakeShare(Quarter))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Weight)
	assert.Equal(t, 2, out.Value)
	assert.False(t, out.Clamped)
	assert.True(t, out.Consumed)
	assert.Equal(t, 2, b.Value())
}

func TestTakePartialValueFollowsExactShare(t *testing.T) {
	tests := []struct {
		name       string
		load       int
		item       Item
		f          Fraction
		wantWeight int
		wantValue  int
		clamped    bool
	}{
		{"third of crown", 0, mustItem(t, "Golden Crown", 35, 8), Third, 2, 11, false},
		{"scroll three quarters", 0, mustItem(t, "Magic Scroll", 25, 1), ThreeQuarters, 0, 18, false},
		{"coin half", 0, mustItem(t, "Ancient Coin", 12, 1), Half, 0, 6, false},
		{"clamped by capacity", 47, mustItem(t, "Golden Crown", 35, 8), ThreeQuarters, 3, 13, true},
		{"share fits exactly", 46, mustItem(t, "Golden Crown", 35, 8), Half, 4, 17, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := loaded(t, 50, tc.load)
			out, err := b.Apply(tc.item, TakeShare(tc.f))
			require.NoError(t, err)
			assert.Equal(t, tc.wantWeight, out.Weight)
			assert.Equal(t, tc.wantValue, out.Value)
			assert.Equal(t, tc.clamped, out.Clamped)
			assert.LessOrEqual(t, b.Weight(), b.Capacity())
		})
	}
}

func TestTakePartialRejected(t *testing.T) {
	full := loaded(t, 50, 50)
	_, err := full.Apply(mustItem(t, "Coin", 8, 1), TakeShare(Half))
	assert.ErrorIs(t, err, ErrNotEligible)

	b := loaded(t, 50, 0)
	_, err = b.Apply(mustItem(t, "Coin", 8, 4), TakeShare(Fraction{5, 4}))
	assert.ErrorIs(t, err, ErrInvalidFraction)
	_, err = b.Apply(mustItem(t, "Coin", 8, 4), TakeShare(Fraction{}))
	assert.ErrorIs(t, err, ErrInvalidFraction)
	assert.Equal(t, 0, b.Weight())
}

func TestSkipIsNoOp(t *testing.T) {
	for _, w := range []int{0, 20, 50} {
		b := loaded(t, 50, w)
		value := b.Value()
		out, err := b.Apply(mustItem(t, "Orb", 22, 10), SkipItem())
		require.NoError(t, err)
		assert.Equal(t, w, b.Weight())
		assert.Equal(t, value, b.Value())
		assert.False(t, out.Consumed)
	}
}

// Every sequence of gated decisions keeps the weight within capacity and
// the value non-decreasing.
func TestRandomDecisionsStayWithinCapacity(t *testing.T) {
	b := loaded(t, 50, 0)
	items := DefaultCatalog().Items()
	lastValue := 0
	for i := 0; i < 500; i++ {
		item := items[i%len(items)]
		choices := b.Eligible(item).List()
		choice := choices[i%len(choices)]

		var d Decision
		switch choice {
		case TakeAll:
			d = TakeWhole()
		case TakePartial:
			d = TakeShare(MenuFractions[i%len(MenuFractions)])
		}
		_, err := b.Apply(item, d)
		require.NoError(t, err)
		require.LessOrEqual(t, b.Weight(), b.Capacity())
		require.GreaterOrEqual(t, b.Value(), lastValue)
		lastValue = b.Value()
	}
}

func TestOfferPrompt(t *testing.T) {
	b := loaded(t, 50, 45)
	item := mustItem(t, "Relic", 20, 10)
	offer := b.Offer(item)

	p := offer.Prompt(b)
	assert.Equal(t, []string{"Take Part", "Skip"}, p.Options)
	assert.Contains(t, p.Title, "Relic")

	assert.Equal(t, TakePartial, offer.ChoiceAt(0))
	assert.Equal(t, Skip, offer.ChoiceAt(1))
	assert.Equal(t, Skip, offer.ChoiceAt(-1), "dismissal maps to skip")
	assert.Equal(t, Skip, offer.ChoiceAt(7))
}

func TestFractionPrompt(t *testing.T) {
	p := FractionPrompt(mustItem(t, "Orb", 22, 10))
	assert.Equal(t, []string{"1/4 of item", "1/3 of item", "1/2 of item", "3/4 of item"}, p.Options)

	f, ok := FractionAt(1)
	assert.True(t, ok)
	assert.Equal(t, Third, f)

	_, ok = FractionAt(-1)
	assert.False(t, ok)
}
