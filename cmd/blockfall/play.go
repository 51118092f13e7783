package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game in the current terminal.

Controls:
  A/D, Arrows  - Move the falling tile
  S/Space      - Drop the tile to the floor
  P/Esc        - Pause
  Tab          - Scoreboard
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, long levels
  normal - The standard pace
  hard   - Fast start, short levels
  zen    - Relaxed fixed pace, no speedup

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, zen")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	gameCfg := gameConfig(cfg)
	gameCfg.Seed = flagSeed

	// Get terminal size early: the board must fit before taking over the
	// screen.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	minW := cfg.Grid.Width*2 + 2
	minH := cfg.Grid.Height + 5
	if width < minW || height < minH {
		fmt.Fprintf(os.Stderr, "Error: terminal %dx%d is too small, need at least %dx%d\n",
			width, height, minW, minH)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(tui.Options{
		Game:       gameCfg,
		Store:      store,
		Difficulty: string(preset),
		Width:      width,
		Height:     height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// gameConfig maps the loaded file config onto simulation parameters.
func gameConfig(cfg config.Config) game.Config {
	return game.Config{
		Width:        cfg.Grid.Width,
		Height:       cfg.Grid.Height,
		TickInterval: time.Duration(cfg.Speed.TickMS) * time.Millisecond,
		TicksPerStep: cfg.Speed.StartTicksPerStep,
		RowsPerLevel: cfg.Speed.RowsPerLevel,
	}
}
