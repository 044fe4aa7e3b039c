package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cave-loot/internal/games/cave"
	"github.com/vovakirdan/cave-loot/internal/games/loot"
	"github.com/vovakirdan/cave-loot/internal/platform/tui"
	"github.com/vovakirdan/cave-loot/internal/registry"
	"github.com/vovakirdan/cave-loot/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move (cave)
  Up/W/Space       - Jump (cave)
  Up/Down, Enter   - Choose in a dialog, Esc to dismiss
  1-9              - Pick a dialog option directly
  P                - Pause (cave)
  R                - Restart (after a round ends)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Bigger backpack, fewer and slower enemies
  normal - The config as written
  hard   - Smaller backpack, more and faster enemies
  fixed  - Enemy speed never increases

Examples:
  caveloot play loot
  caveloot play cave --difficulty easy
  caveloot play cave --seed 42
  caveloot play cave --config ./my-cave.yaml
  caveloot play loot --assets ./my-sprites.json`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Path to a custom sprite atlas")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'caveloot list' to see available games.")
		os.Exit(1)
	}

	configureGame(gameID, flagConfig, flagDifficulty, flagAssets)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := sessionOptions()
	store := openStore()
	opts.Store = store

	runErr := tui.Run(game, opts, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// configureGame passes config, difficulty and assets to a game package
// before an instance is created.
func configureGame(gameID, configPath, difficulty, assetsPath string) {
	switch gameID {
	case "loot":
		loot.SetConfigPath(configPath)
		loot.SetDifficultyPreset(difficulty)
		loot.SetAssetsPath(assetsPath)
	case "cave":
		cave.SetConfigPath(configPath)
		cave.SetDifficultyPreset(difficulty)
		cave.SetAssetsPath(assetsPath)
	}
	log.Debug("game configured", "game", gameID, "config", configPath, "difficulty", difficulty, "assets", assetsPath)
}

// openStore opens the score database. A failure only disables history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
