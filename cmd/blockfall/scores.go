package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagLimit           int
	flagScoreDifficulty string
	flagClear           bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded high scores",
	Long: `Display the top recorded games, best first.

Examples:
  blockfall scores
  blockfall scores --limit 20
  blockfall scores --difficulty hard
  blockfall scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagScoreDifficulty, "difficulty", "", "Only this difficulty (default: all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded scores instead of listing them")
}

func runScores(cmd *cobra.Command, args []string) {
	// An empty filter means every difficulty; anything else must name a
	// known preset.
	if flagScoreDifficulty != "" {
		if _, err := config.ParsePreset(flagScoreDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(flagScoreDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		if flagScoreDifficulty == "" {
			fmt.Println("All scores cleared.")
		} else {
			fmt.Printf("Scores cleared for difficulty %q.\n", flagScoreDifficulty)
		}
		return
	}

	results, err := store.TopResults(flagLimit, flagScoreDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	label := "all difficulties"
	if flagScoreDifficulty != "" {
		label = flagScoreDifficulty
	}
	fmt.Printf("High Scores - %s\n", label)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-5s  %-8s  %-10s  %s\n",
		"Rank", "Score", "Level", "Rows", "Tiles", "Diff", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-5s  %-8s  %-10s  %s\n",
		"----", "-----", "-----", "----", "-----", "----", "------", "----")

	// Print results
	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-5d  %-8s  %-10s  %s\n",
			i+1, r.Score, r.Level, r.Rows, r.Tiles, r.Difficulty, player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Aggregate line
	stats, err := store.GetStats(flagScoreDifficulty)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d   Best: %d   Average: %.1f   Rows cleared: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalRows)
	}
}
