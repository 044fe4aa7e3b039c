// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cave-loot/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every game implements. Games are pure logic with
// no Bubble Tea dependency; the platform handles input, timing and drawing.
type Game interface {
	// ID returns the identifier used on the command line and in the
	// score database (e.g. "loot", "cave").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds every entity of the round from configuration.
	// Called once at start and again for each new round.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Prompter is implemented by games that stop for the player's decision.
// While Prompt returns non-nil the platform shows it and stops ticking;
// the selected option index, or core.Dismissed, is passed to Answer.
type Prompter interface {
	Prompt() *core.Prompt
	Answer(index int)
}

// Summarizer is implemented by games that report a finished round for the
// score history.
type Summarizer interface {
	// RoundOver returns the finished round's result once per round.
	// ok is false while the round runs or after it was already reported.
	RoundOver() (result RoundResult, ok bool)
}

// RoundResult is a finished round as recorded in the score history.
type RoundResult struct {
	Reason   string
	Won      bool
	Score    int
	Value    int
	Weight   int
	Capacity int
	Ticks    int
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
