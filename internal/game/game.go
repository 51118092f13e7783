// Package game implements the falling-block simulation: a fixed-size
// playfield of single-cell tiles, one active tile steered by input, and a
// tick-driven state machine covering gravity, bottom-row clearing,
// scoring, level progression, and game over. The package is pure and
// deterministic; timing, key decoding, and rendering live in the
// platform layer.
package game

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Phase is the durable lifecycle state of one game.
type Phase int

const (
	PhaseGameOver Phase = iota // initial: waiting for any input to start
	PhaseActive
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseGameOver:
		return "GameOver"
	case PhaseActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// Events reports what happened on the most recent gravity step. The flags
// are cleared and recomputed every gravity step, not every tick.
type Events struct {
	RowClear  bool
	TileAdded bool
}

// Game is the tick-driven machine. It exclusively owns the playfield
// storage; renderers and input layers reach it only through the read-only
// queries and Tick.
type Game struct {
	cfg   Config
	field *Playfield
	rng   *rand.Rand

	phase   Phase
	activeX int
	activeY int

	tickCount    int
	ticksPerStep int // current gravity threshold, shrinks as the level climbs

	tilesPlaced int
	rowsCleared int
	score       int
	level       int

	events       Events
	lastColorIdx int
}

// NewGame allocates the playfield and returns a machine in the GameOver
// phase, waiting for the first input symbol to start a game.
func NewGame(cfg Config) *Game {
	return &Game{
		cfg:          cfg,
		field:        NewPlayfield(cfg.Width, cfg.Height),
		rng:          rand.New(rand.NewSource(cfg.Seed)),
		phase:        PhaseGameOver,
		ticksPerStep: cfg.TicksPerStep,
		lastColorIdx: -1,
	}
}

// Tick advances the simulation by exactly one external clock pulse,
// applying at most one input symbol. The returned flag reports whether
// the visible board may have changed, so callers can skip redraws: it is
// false only in GameOver with no input, or in Active with no input and no
// gravity step.
func (g *Game) Tick(in Input) bool {
	if g.phase == PhaseGameOver {
		if in == InputNone {
			return false
		}
		return g.startGame()
	}

	// The gravity step fires when the counter sits at the wrap boundary
	// as the pulse arrives. Input is applied first, so a hard drop's
	// forced counter reset is seen by this same pulse only when the
	// counter was already at the boundary; otherwise it takes effect on
	// the next pulse.
	fire := g.tickCount == 0
	g.tickCount++
	if g.tickCount >= g.ticksPerStep {
		g.tickCount = 0
	}

	changed := g.applyInput(in)

	if fire {
		g.gravityStep()
		changed = true
	}

	return changed
}

// startGame resets counters and board, then spawns the first tile at top
// center. The occupied check cannot fail right after a reset but is kept
// as a guard; the machine then simply stays in GameOver.
func (g *Game) startGame() bool {
	g.field.ResetAll()
	g.tickCount = 0
	g.tilesPlaced = 0
	g.rowsCleared = 0
	g.score = 0
	g.level = 0
	g.events = Events{}

	if g.spawn(g.spawnX(), 0) {
		g.phase = PhaseActive
	}
	return true
}

// applyInput interprets one input symbol. Any recognized non-None symbol
// marks the board changed even when the move it requests is rejected at a
// wall; renderers repaint on attempts, not only on successes.
func (g *Game) applyInput(in Input) bool {
	switch in {
	case InputLeft:
		g.moveLeft()
		return true
	case InputRight:
		g.moveRight()
		return true
	case InputDown:
		// Hard drop, then force the counter so the next pulse runs the
		// gravity check against the landed tile.
		g.dropToFloor()
		g.tickCount = 0
		return true
	case InputEnter, InputUp:
		// No playfield effect.
		return true
	default:
		return false
	}
}

// gravityStep runs the once-per-threshold logic: bottom-row clearing,
// then the landing/spawn check for the active tile.
func (g *Game) gravityStep() {
	g.events = Events{}

	if g.field.RowFull(g.field.Height() - 1) {
		g.clearBottomRow()
	}

	// The active slot may have been vacated by the row shift; either that
	// or a blocked downward step means the tile has landed and the next
	// one spawns.
	if !g.field.Occupied(g.activeX, g.activeY) || !g.moveDown() {
		g.landTile()
	}
}

// clearBottomRow discards the full bottom row by shifting every row above
// it down one, leaving row 0 empty, then applies scoring and leveling.
func (g *Game) clearBottomRow() {
	bottom := g.field.Height() - 1
	for y := bottom; y >= 1; y-- {
		g.field.CopyRow(y, y-1)
	}
	g.field.ResetRow(0)

	g.events.RowClear = true
	g.rowsCleared++
	g.score += g.level + 1
	if g.rowsCleared%g.cfg.RowsPerLevel == 0 {
		g.advanceLevel()
	}
}

// advanceLevel bumps the level and tightens the gravity threshold one
// schedule step.
func (g *Game) advanceLevel() {
	g.level++
	g.ticksPerStep = nextThreshold(g.ticksPerStep)
}

// nextThreshold returns the gravity threshold after one level advance.
// The three-tier schedule accelerates quickly at low thresholds and in
// coarse jumps at high ones, with a hard floor of 1; the breakpoints are
// part of the game's feel and must not be smoothed out.
func nextThreshold(current int) int {
	switch {
	case current > 20:
		return current - 10
	case current > 10:
		return current - 2
	case current > 1:
		return current - 1
	default:
		return current
	}
}

// landTile spawns the next tile at top center. A blocked spawn is the
// genuine game-over condition: the phase flips and the gravity threshold
// returns to its configured initial value, the only place it is ever
// reset upward.
func (g *Game) landTile() {
	if g.spawn(g.spawnX(), 0) {
		g.events.TileAdded = true
		g.tilesPlaced++
		return
	}
	g.phase = PhaseGameOver
	g.ticksPerStep = g.cfg.TicksPerStep
}

// spawnX is the top-center spawn column.
func (g *Game) spawnX() int {
	return (g.field.Width() - 1) / 2
}

// Occupied reports whether the board cell at (x, y) holds a tile.
func (g *Game) Occupied(x, y int) bool {
	return g.field.Occupied(x, y)
}

// ColorAt returns the tile color at (x, y); empty cells return the zero
// RGB sentinel.
func (g *Game) ColorAt(x, y int) core.RGB {
	return g.field.ColorAt(x, y)
}

// Phase returns the durable lifecycle state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Tiles returns the number of tiles placed this game, not counting the
// tile the game started with.
func (g *Game) Tiles() int {
	return g.tilesPlaced
}

// Rows returns the number of rows cleared this game.
func (g *Game) Rows() int {
	return g.rowsCleared
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level, starting at 0.
func (g *Game) Level() int {
	return g.level
}

// TicksPerStep returns the current gravity threshold in clock pulses;
// the HUD shows it as speed.
func (g *Game) TicksPerStep() int {
	return g.ticksPerStep
}

// LastEvents returns the transient flags from the most recent gravity
// step.
func (g *Game) LastEvents() Events {
	return g.events
}

// Width returns the grid width in cells.
func (g *Game) Width() int {
	return g.field.Width()
}

// Height returns the grid height in cells.
func (g *Game) Height() int {
	return g.field.Height()
}

// Config returns the construction-time configuration.
func (g *Game) Config() Config {
	return g.cfg
}
