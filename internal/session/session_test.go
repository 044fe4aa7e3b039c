package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cave-loot/internal/core"
)

func TestLifecycleRound(t *testing.T) {
	l := New()
	require.Equal(t, Active, l.State())

	assert.True(t, l.Tick())
	require.NoError(t, l.Suspend())
	assert.False(t, l.Tick(), "no ticks elapse while suspended")
	assert.False(t, l.Running())
	require.NoError(t, l.Resume())
	assert.True(t, l.Tick())
	assert.Equal(t, 2, l.Ticks())

	require.NoError(t, l.End(BackpackFull))
	assert.Equal(t, Ended, l.State())
	assert.Equal(t, BackpackFull, l.Reason())
	assert.False(t, l.Tick())

	require.NoError(t, l.Reset())
	assert.Equal(t, Active, l.State())
	assert.Equal(t, None, l.Reason())
	assert.Zero(t, l.Ticks())

	require.NoError(t, l.End(HitByEnemy))
	require.NoError(t, l.Terminate())
	assert.Equal(t, Terminated, l.State())
}

func TestLifecycleInvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Lifecycle)
		move  func(*Lifecycle) error
	}{
		{"resume while active", func(*Lifecycle) {}, (*Lifecycle).Resume},
		{"reset while active", func(*Lifecycle) {}, (*Lifecycle).Reset},
		{"terminate while active", func(*Lifecycle) {}, (*Lifecycle).Terminate},
		{"suspend twice", func(l *Lifecycle) { _ = l.Suspend() }, (*Lifecycle).Suspend},
		{"end while suspended", func(l *Lifecycle) { _ = l.Suspend() },
			func(l *Lifecycle) error { return l.End(FellOffWorld) }},
		{"end twice", func(l *Lifecycle) { _ = l.End(FellOffWorld) },
			func(l *Lifecycle) error { return l.End(HitByEnemy) }},
		{"end without reason", func(*Lifecycle) {},
			func(l *Lifecycle) error { return l.End(None) }},
		{"reset after terminate", func(l *Lifecycle) { _ = l.End(FellOffWorld); _ = l.Terminate() },
			(*Lifecycle).Reset},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			tc.setup(l)
			before := l.State()
			assert.ErrorIs(t, tc.move(l), ErrInvalidTransition)
			assert.Equal(t, before, l.State())
		})
	}
}

func TestEvaluatePriority(t *testing.T) {
	tests := []struct {
		name string
		c    Conditions
		want Reason
	}{
		{"nothing", Conditions{}, None},
		{"everything", Conditions{true, true, true, true}, FellOffWorld},
		{"hit and full", Conditions{HitByEnemy: true, BackpackFull: true}, HitByEnemy},
		{"exhausted and full", Conditions{SupplyExhausted: true, BackpackFull: true}, SupplyExhausted},
		{"full only", Conditions{BackpackFull: true}, BackpackFull},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ended := Evaluate(tc.c)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want != None, ended)
		})
	}
}

func TestReasonWon(t *testing.T) {
	assert.False(t, FellOffWorld.Won())
	assert.False(t, HitByEnemy.Won())
	assert.True(t, SupplyExhausted.Won())
	assert.True(t, BackpackFull.Won())
}

func TestSummaryPrompt(t *testing.T) {
	s := Summary{Reason: BackpackFull, Score: 70, Value: 93, Weight: 50, Capacity: 50}
	p := s.Prompt()

	assert.Equal(t, "Backpack Full", p.Title)
	assert.Contains(t, p.Lines, "Backpack Weight: 50/50")
	assert.Equal(t, []string{"Play again", "Quit"}, p.Options)

	assert.True(t, Replay(PlayAgain))
	assert.False(t, Replay(Quit))
	assert.False(t, Replay(core.Dismissed), "dismissing the summary quits")
}
