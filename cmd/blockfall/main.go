// blockfall is a falling-block puzzle for the terminal.
//
// Usage:
//
//	blockfall                - Start a game with the default setup
//	blockfall play           - Start a game
//	blockfall scores         - Show recorded high scores
//	blockfall serve          - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Use a custom config YAML
//	--seed <value>   - Set color RNG seed for reproducible tile colors
//	--db <path>      - Set database path (default: ~/.blockfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - A falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal puzzle game: single-cell tiles fall into a
fixed well, full bottom rows vanish, and the pace climbs with every level.

Available commands:
  play     - Start a game (also the default when no command is given)
  scores   - View high scores and statistics
  serve    - Start SSH server for remote play

Examples:
  blockfall
  blockfall play --difficulty hard
  blockfall scores --limit 20
  blockfall serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Color RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
