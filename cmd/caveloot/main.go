// caveloot is a pair of terminal treasure-hunting games about packing a
// limited backpack.
//
// Usage:
//
//	caveloot list            - List available games
//	caveloot play <game>     - Play a game
//	caveloot menu            - Start menu to pick games interactively
//	caveloot scores <game>   - Show high scores and recent rounds
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.caveloot/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//
// CAVELOOT_DB, CAVELOOT_FPS and CAVELOOT_LOG_LEVEL, from the environment or
// a .env file, replace the defaults of the matching flags.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/cave-loot/internal/config"
	"github.com/vovakirdan/cave-loot/internal/core"
	"github.com/vovakirdan/cave-loot/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/cave-loot/internal/games/cave"
	_ "github.com/vovakirdan/cave-loot/internal/games/loot"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagHold     time.Duration
)

// envFlags maps environment variables to the global flags they default.
var envFlags = map[string]string{
	"CAVELOOT_DB":        "db",
	"CAVELOOT_FPS":       "fps",
	"CAVELOOT_LOG_LEVEL": "log-level",
}

var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "caveloot",
	Short: "Cave Loot - fill your backpack in the terminal",
	Long: `Cave Loot is a pair of terminal games about packing a backpack of
limited capacity with the most valuable treasure.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores and recent rounds

Examples:
  caveloot list
  caveloot play loot
  caveloot play cave --difficulty hard
  caveloot menu
  caveloot scores cave`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat; raise it if movement stutters at the start of a hold")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies environment defaults and installs the file logger.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is the common case.
	_ = godotenv.Load()

	flags := cmd.Flags()
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if f := flags.Lookup(name); f != nil && !f.Changed {
			if err := f.Value.Set(v); err != nil {
				return fmt.Errorf("%s=%q: %w", env, v, err)
			}
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger, err := newFileLogger(level)
	if err != nil {
		// The game is still playable without a log.
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return nil
	}
	log.SetDefault(logger)
	logger.Debug("starting", "command", cmd.Name(), "flags", changedFlags(flags))
	return nil
}

// newFileLogger writes to ~/.caveloot/caveloot.log since the terminal is
// owned by the game while it runs.
func newFileLogger(level log.Level) (*log.Logger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, config.AppDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "caveloot.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	logFile = f

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "caveloot",
		Level:           level,
	}), nil
}

func changedFlags(flags *pflag.FlagSet) []string {
	var out []string
	flags.Visit(func(f *pflag.Flag) {
		out = append(out, f.Name+"="+f.Value.String())
	})
	return out
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func sessionOptions() tui.Options {
	return tui.Options{
		Logger:     log.Default(),
		HoldWindow: flagHold,
	}
}
