package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cave-loot/internal/config"
	"github.com/vovakirdan/cave-loot/internal/core"
	"github.com/vovakirdan/cave-loot/internal/registry"
	"github.com/vovakirdan/cave-loot/internal/storage"
)

// footerRows is the number of rows below the game screen for the help bar.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game session.
type Options struct {
	Store      *storage.Store // Optional; nil disables score history
	Logger     *log.Logger    // Optional; defaults to log.Default()
	HoldWindow time.Duration  // Synthetic key release delay
}

// Model is the Bubble Tea model for running a game.
//
// Ticks form a single chain: each tick schedules the next. When the game
// raises a prompt the chain stops, and answering the last prompt starts it
// again, so the game's clock does not run while the player decides.
type Model struct {
	game       registry.Game
	prompter   registry.Prompter   // nil if the game never asks
	summarizer registry.Summarizer // nil if the game has no round results
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	holds      *HoldTracker
	keys       KeyMap
	menuKeys   MenuKeyMap
	help       help.Model
	dialog     *Dialog
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:       game,
		store:      opts.Store,
		logger:     logger.WithPrefix(game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holds:      NewHoldTracker(opts.HoldWindow),
		keys:       DefaultKeyMap(),
		menuKeys:   DefaultMenuKeyMap(),
		help:       help.New(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.prompter, _ = game.(registry.Prompter)
	m.summarizer, _ = game.(registry.Summarizer)
	m.screen = core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerRows))
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Restart) && m.gameState.GameOver:
		return m.restart()
	}

	if m.dialog != nil {
		answer, done := m.dialog.HandleKey(msg)
		if !done {
			return m, nil
		}
		m.dialog = nil
		m.prompter.Answer(answer)
		m.gameState = m.game.State()
		return m.settle()
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if Held(action) && m.holds.Press(action, time.Now()) {
		m.logger.Debug("key down", "action", action)
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. Games scale their world to
// the screen, so a resize does not reset the round.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerRows))
	m.help.Width = msg.Width
	return m
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		// A stale tick from before the prompt opened ends the chain here.
		return m, nil
	}

	m.holds.Expire(now, &m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	return m.settle()
}

// settle records a finished round, honors a quit request and either opens
// the next prompt or keeps the tick chain going.
func (m Model) settle() (tea.Model, tea.Cmd) {
	m.recordRound()

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.prompter != nil {
		if p := m.prompter.Prompt(); p != nil {
			m.dialog = NewDialog(*p, m.menuKeys)
			// Keys held when the dialog opened must not leak into the round.
			m.holds.ReleaseAll(&m.inputFrame)
			return m, nil
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// restart starts a new round with a fresh seed. The tick chain is only
// restarted if a dialog had stopped it.
func (m Model) restart() (tea.Model, tea.Cmd) {
	waiting := m.dialog != nil
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.dialog = nil
	m.inputFrame.Clear()
	if !waiting {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// recordRound saves a finished round once. Games without round results
// fall back to saving the score on game over.
func (m *Model) recordRound() {
	if m.summarizer != nil {
		r, ok := m.summarizer.RoundOver()
		if !ok {
			return
		}
		m.logger.Info("round over", "reason", r.Reason, "won", r.Won, "score", r.Score, "value", r.Value)
		if m.store == nil {
			return
		}
		runID, err := m.store.SaveRound(storage.Round{
			GameID:   m.game.ID(),
			Reason:   r.Reason,
			Won:      r.Won,
			Score:    r.Score,
			Value:    r.Value,
			Weight:   r.Weight,
			Capacity: r.Capacity,
			Ticks:    r.Ticks,
		})
		if err != nil {
			m.logger.Error("cannot save round", "error", err)
			return
		}
		m.logger.Debug("round saved", "run", runID)
		return
	}

	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store != nil {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Error("cannot save score", "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("no home directory for screenshots", "error", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.dialog != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
