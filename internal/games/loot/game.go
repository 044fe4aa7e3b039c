// Package loot implements Cave Loot Challenge: treasures are drawn one at a
// time from a shuffled queue and the player decides what goes into a
// backpack of limited capacity.
package loot

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cave-loot/internal/assets"
	"github.com/vovakirdan/cave-loot/internal/config"
	"github.com/vovakirdan/cave-loot/internal/core"
	"github.com/vovakirdan/cave-loot/internal/inventory"
	"github.com/vovakirdan/cave-loot/internal/registry"
	"github.com/vovakirdan/cave-loot/internal/session"
	"github.com/vovakirdan/cave-loot/internal/treasure"
)

// Game implements the queue-mode backpack picker.
type Game struct {
	runtime  core.RuntimeConfig
	atlas    *assets.Atlas
	rng      *rand.Rand
	seed     int64
	life     *session.Lifecycle
	backpack *inventory.Backpack
	queue    *treasure.Queue
	exchange *inventory.Exchange // Offer awaiting a decision
	last     inventory.Item      // Most recent item, shown on the card
	status   string
	summary  *session.Summary
	reported bool
	paused   bool
	quit     bool
}

var (
	configPath       string
	assetsPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAssetsPath sets a sprite atlas file to use instead of the built-in one.
func SetAssetsPath(path string) {
	assetsPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Cave Loot Challenge instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "loot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cave Loot Challenge"
}

// Reset starts a new round. Nothing carries over from the previous one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadLoot(configPath)
	if err != nil {
		log.Warn("loot config unusable, using defaults", "path", configPath, "error", err)
		cfg = config.DefaultLootConfig()
	}
	config.ApplyLootPreset(&cfg, difficultyPreset)

	catalog, err := cfg.BuildCatalog()
	if err != nil {
		log.Warn("bad catalog, using default", "error", err)
		catalog = inventory.DefaultCatalog()
	}

	backpack, err := inventory.NewBackpack(cfg.Backpack.Capacity)
	if err != nil {
		log.Warn("bad capacity, using default", "error", err)
		backpack, _ = inventory.NewBackpack(inventory.DefaultCapacity)
	}

	g.atlas = assets.Cached(assetsPath, log.Default())
	if g.rng == nil || g.seed != runtime.Seed {
		g.rng = rand.New(rand.NewSource(runtime.Seed))
		g.seed = runtime.Seed
	}
	if g.life == nil || g.life.Reset() != nil {
		g.life = session.New()
	}

	g.backpack = backpack
	g.queue = treasure.NewQueue(catalog, g.rng)
	g.exchange = nil
	g.last = inventory.Item{}
	g.status = "Explore the cave!"
	g.summary = nil
	g.reported = false
	g.paused = false
	g.quit = false
}

// Step advances the game by one tick. Each active tick either ends the
// round or draws the next treasure and waits for the player's decision.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.life.Running() {
		g.paused = !g.paused
	}
	if g.paused || !g.life.Tick() {
		return core.StepResult{State: g.State()}
	}

	if reason, ended := session.Evaluate(session.Conditions{
		SupplyExhausted: g.queue.Empty(),
		BackpackFull:    g.backpack.Full(),
	}); ended {
		g.end(reason)
		return core.StepResult{State: g.State()}
	}

	item, _ := g.queue.Draw()
	g.last = item
	g.exchange = inventory.NewExchange(g.backpack, item, true)
	g.status = fmt.Sprintf("You found a %s!", item.Name)
	if err := g.life.Suspend(); err != nil {
		log.Error("cannot suspend round", "error", err)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) end(reason session.Reason) {
	if err := g.life.End(reason); err != nil {
		log.Error("cannot end round", "reason", reason, "error", err)
		return
	}
	g.summary = &session.Summary{
		Reason:   reason,
		Score:    g.backpack.Value(),
		Value:    g.backpack.Value(),
		Weight:   g.backpack.Weight(),
		Capacity: g.backpack.Capacity(),
		Ticks:    g.life.Ticks(),
	}
	g.status = reason.Message()
}

// Prompt returns the pending decision, if any.
func (g *Game) Prompt() *core.Prompt {
	switch {
	case g.exchange != nil:
		p := g.exchange.Prompt()
		return &p
	case g.summary != nil && g.life.State() == session.Ended:
		p := g.summary.Prompt()
		return &p
	default:
		return nil
	}
}

// Answer resolves the pending prompt.
func (g *Game) Answer(index int) {
	if g.exchange != nil {
		g.answerOffer(index)
		return
	}
	if g.life.State() != session.Ended {
		return
	}
	if session.Replay(index) {
		g.Reset(g.runtime)
		return
	}
	if err := g.life.Terminate(); err != nil {
		log.Error("cannot terminate", "error", err)
	}
	g.quit = true
}

func (g *Game) answerOffer(index int) {
	ex := g.exchange
	if err := ex.Answer(index); err != nil {
		log.Warn("decision rejected, skipping", "item", ex.Item().Name, "error", err)
	}
	if !ex.Done() {
		return
	}

	out := ex.Outcome()
	switch {
	case !out.Consumed:
		g.status = fmt.Sprintf("You skipped the %s.", out.Item.Name)
	case out.Decision.Choice == inventory.TakeAll:
		g.status = fmt.Sprintf("You took the %s!", out.Item.Name)
	default:
		g.status = fmt.Sprintf("You took part of the %s worth %d!", out.Item.Name, out.Value)
	}

	g.exchange = nil
	if err := g.life.Resume(); err != nil {
		log.Error("cannot resume round", "error", err)
	}
}

// RoundOver reports a finished round once.
func (g *Game) RoundOver() (registry.RoundResult, bool) {
	if g.summary == nil || g.reported {
		return registry.RoundResult{}, false
	}
	g.reported = true
	s := g.summary
	return registry.RoundResult{
		Reason:   s.Reason.String(),
		Won:      s.Reason.Won(),
		Score:    s.Score,
		Value:    s.Value,
		Weight:   s.Weight,
		Capacity: s.Capacity,
		Ticks:    s.Ticks,
	}, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.life == nil {
		return core.GameState{}
	}
	st := g.life.State()
	return core.GameState{
		Score:    g.backpack.Value(),
		GameOver: st == session.Ended || st == session.Terminated,
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Register the game with the registry
func init() {
	registry.Register("loot", func() registry.Game {
		return New()
	})
}
