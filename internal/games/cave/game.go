// Package cave implements Cave Adventure, a platformer where the player
// jumps between ledges, stomps patrolling orcs and decides how much of each
// treasure found along the way fits into the backpack.
package cave

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cave-loot/internal/assets"
	"github.com/vovakirdan/cave-loot/internal/config"
	"github.com/vovakirdan/cave-loot/internal/core"
	"github.com/vovakirdan/cave-loot/internal/inventory"
	"github.com/vovakirdan/cave-loot/internal/registry"
	"github.com/vovakirdan/cave-loot/internal/session"
)

// Game implements the Cave Adventure platformer.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.CaveConfig
	physics    Physics
	patrol     Patrol
	difficulty *config.DifficultyManager
	atlas      *assets.Atlas
	rng        *rand.Rand
	seed       int64
	life       *session.Lifecycle
	round      *Round

	exchange *inventory.Exchange // Pickup decision in progress
	pickupID int

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

// New creates a new Cave Adventure instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cave"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cave Adventure"
}

// Reset rebuilds the round from configuration: backpack, actor, platforms,
// pickups and orcs all start over.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCave(configPath)
	if err != nil {
		log.Warn("cave config unusable, using defaults", "path", configPath, "error", err)
		cfg = config.DefaultCaveConfig()
	}
	config.ApplyCavePreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		log.Warn("cave config invalid, using defaults", "error", err)
		cfg = config.DefaultCaveConfig()
	}
	g.cfg = cfg

	g.physics = Physics{
		Gravity:      cfg.Physics.Gravity,
		JumpStrength: cfg.Physics.JumpStrength,
		MoveSpeed:    cfg.Physics.MoveSpeed,
		LandingBand:  cfg.Physics.LandingBand,
		WorldW:       cfg.World.Width,
		WorldH:       cfg.World.Height,
	}
	g.patrol = Patrol{
		AnimEvery: cfg.Enemies.AnimEvery,
		Frames:    cfg.Enemies.Frames,
		WorldW:    cfg.World.Width,
	}
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.atlas = assets.Cached(assetsPath, log.Default())
	if g.rng == nil || g.seed != runtime.Seed {
		g.rng = rand.New(rand.NewSource(runtime.Seed))
		g.seed = runtime.Seed
	}
	if g.life == nil || g.life.Reset() != nil {
		g.life = session.New()
	}

	round, err := NewRound(cfg, g.rng)
	if err != nil {
		log.Error("cannot build round, using defaults", "error", err)
		round, _ = NewRound(config.DefaultCaveConfig(), g.rng)
	}
	g.round = round
	g.exchange = nil
	g.summary = nil
	g.reported = false
	g.paused = false
	g.quit = false
}

// Step advances the game by one tick. Touching a pickup suspends the round
// mid-tick; the rest of the tick runs once the player has decided.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.life.Running() {
		g.paused = !g.paused
	}
	if g.paused || !g.life.Tick() {
		// Releases still count, or a key let go during a pause stays held.
		if g.round != nil {
			g.round.Actor.ApplyReleases(in)
		}
		return core.StepResult{State: g.State()}
	}

	r := g.round
	jump := r.Actor.ApplyInput(in)
	g.physics.Step(&r.Actor, r.Platforms, jump)

	if g.physics.FellOff(&r.Actor) {
		g.evaluate(session.Conditions{FellOffWorld: true})
		return core.StepResult{State: g.State()}
	}

	body := r.Actor.Bounds()
	r.Pickups.Refresh(body)
	if p, ok := r.Pickups.FirstHit(body); ok {
		g.exchange = inventory.NewExchange(r.Backpack, p.Item, false)
		g.pickupID = p.ID
		if err := g.life.Suspend(); err != nil {
			log.Error("cannot suspend round", "error", err)
		}
		return core.StepResult{State: g.State()}
	}

	g.finishTick()
	return core.StepResult{State: g.State()}
}

// finishTick runs the part of a tick after pickups: toast timer, orc
// patrol and contact, and the end check.
func (g *Game) finishTick() {
	r := g.round
	if r.Toast.Ticks > 0 {
		r.Toast.Ticks--
	}

	speed := g.difficulty.Speed(g.cfg.Enemies.Speed, r.Score, g.life.Ticks())
	for i := range r.Enemies {
		g.patrol.Step(&r.Enemies[i], speed)
	}
	var contact Contact
	r.Enemies, contact = Collide(&r.Actor, r.Enemies, g.cfg.Physics.JumpStrength/2)
	r.Score += contact.Stomped * g.cfg.Scoring.Stomp

	g.evaluate(session.Conditions{
		HitByEnemy:      contact.Hit,
		SupplyExhausted: r.Pickups.Empty(),
		BackpackFull:    r.Backpack.Full(),
	})
}

func (g *Game) evaluate(c session.Conditions) {
	reason, ended := session.Evaluate(c)
	if !ended {
		return
	}
	if err := g.life.End(reason); err != nil {
		log.Error("cannot end round", "reason", reason, "error", err)
		return
	}
	r := g.round
	g.summary = &session.Summary{
		Reason:   reason,
		Score:    r.Score,
		Value:    r.Backpack.Value(),
		Weight:   r.Backpack.Weight(),
		Capacity: r.Backpack.Capacity(),
		Ticks:    g.life.Ticks(),
	}
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
		g.answerPickup(index)
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

func (g *Game) answerPickup(index int) {
	ex := g.exchange
	if err := ex.Answer(index); err != nil {
		log.Warn("decision rejected, skipping", "item", ex.Item().Name, "error", err)
	}
	if !ex.Done() {
		return
	}

	r := g.round
	out := ex.Outcome()
	if out.Consumed {
		r.Pickups.Remove(g.pickupID)
		if out.Decision.Choice == inventory.TakeAll {
			r.Score += g.cfg.Scoring.TakeAll
		} else {
			r.Score += g.cfg.Scoring.TakePartial
		}
		r.Toast = Toast{Item: out.Item, Taken: true, Ticks: g.cfg.Scoring.ToastTicks}
	} else {
		r.Pickups.Decline(g.pickupID)
		r.Toast = Toast{Item: out.Item, Ticks: g.cfg.Scoring.SkipToastTicks}
	}

	g.exchange = nil
	if err := g.life.Resume(); err != nil {
		log.Error("cannot resume round", "error", err)
		return
	}
	g.finishTick()
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
		Score:    g.round.Score,
		GameOver: st == session.Ended || st == session.Terminated,
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Register the game with the registry
func init() {
	registry.Register("cave", func() registry.Game {
		return New()
	})
}
