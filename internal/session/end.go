package session

import (
	"fmt"

	"github.com/vovakirdan/cave-loot/internal/core"
)

// Reason says why a round ended.
type Reason int

const (
	None Reason = iota
	FellOffWorld
	HitByEnemy
	SupplyExhausted
	BackpackFull
)

func (r Reason) String() string {
	switch r {
	case None:
		return "none"
	case FellOffWorld:
		return "fell"
	case HitByEnemy:
		return "hit"
	case SupplyExhausted:
		return "exhausted"
	case BackpackFull:
		return "full"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Won reports whether the reason counts as a victory.
func (r Reason) Won() bool {
	return r == SupplyExhausted || r == BackpackFull
}

// Title is the heading of the end-of-round summary.
func (r Reason) Title() string {
	switch r {
	case SupplyExhausted:
		return "Victory"
	case BackpackFull:
		return "Backpack Full"
	default:
		return "Game Over"
	}
}

// Message is the one-line explanation shown in the summary.
func (r Reason) Message() string {
	switch r {
	case FellOffWorld:
		return "You fell into the abyss!"
	case HitByEnemy:
		return "An orc caught you!"
	case SupplyExhausted:
		return "You've collected all available treasures!"
	case BackpackFull:
		return "Your backpack is full!"
	default:
		return ""
	}
}

// Conditions are the end checks a game computes after each tick.
type Conditions struct {
	FellOffWorld    bool
	HitByEnemy      bool
	SupplyExhausted bool
	BackpackFull    bool
}

// Evaluate returns the first condition that holds, in priority order:
// falling, being hit, running out of treasure, filling the backpack.
func Evaluate(c Conditions) (Reason, bool) {
	switch {
	case c.FellOffWorld:
		return FellOffWorld, true
	case c.HitByEnemy:
		return HitByEnemy, true
	case c.SupplyExhausted:
		return SupplyExhausted, true
	case c.BackpackFull:
		return BackpackFull, true
	default:
		return None, false
	}
}

// Summary is what the player sees when a round ends.
type Summary struct {
	Reason   Reason
	Score    int
	Value    int
	Weight   int
	Capacity int
	Ticks    int
}

// Answers of the summary prompt.
const (
	PlayAgain = 0
	Quit      = 1
)

// Prompt builds the play-again prompt.
func (s Summary) Prompt() core.Prompt {
	lines := []string{
		s.Reason.Message(),
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Total Value: %d", s.Value),
		fmt.Sprintf("Backpack Weight: %d/%d", s.Weight, s.Capacity),
		"",
		"Play again?",
	}
	return core.Prompt{
		Title:   s.Reason.Title(),
		Lines:   lines,
		Options: []string{"Play again", "Quit"},
		Default: PlayAgain,
	}
}

// Replay reports whether a summary answer asks for another round. Dismissal
// quits.
func Replay(answer int) bool {
	return answer == PlayAgain
}
