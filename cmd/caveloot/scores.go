package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cave-loot/internal/registry"
	"github.com/vovakirdan/cave-loot/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, followed by
the most recent rounds and overall statistics.

Examples:
  caveloot scores loot
  caveloot scores cave --recent 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent rounds to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'caveloot list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'caveloot play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	printRecent(store, gameID)
	printStats(store, gameID)
}

func printRecent(store *storage.Store, gameID string) {
	if flagRecent <= 0 {
		return
	}
	rounds, err := store.RecentRounds(gameID, flagRecent)
	if err != nil || len(rounds) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	fmt.Printf("  %-16s  %-10s  %-6s  %-6s  %s\n", "Date", "Result", "Score", "Value", "Load")
	for _, r := range rounds {
		fmt.Printf("  %-16s  %-10s  %-6d  %-6d  %d/%d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Reason, r.Score, r.Value, r.Weight, r.Capacity)
	}
}

func printStats(store *storage.Store, gameID string) {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Rounds: %d  Wins: %d  Best value: %d  Avg score: %.1f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.BestValue, stats.AvgScore)
}
