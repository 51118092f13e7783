package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Options carries everything a session needs from the composition root.
type Options struct {
	Game       game.Config
	Store      *storage.Store // nil disables score persistence
	Difficulty string         // preset name recorded with results
	Player     string         // SSH username; empty for local play
	Width      int            // initial terminal size
	Height     int
}

// Model is the Bubble Tea model driving one blockfall session.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	keys   *KeyMapper
	opts   Options

	pending    game.Input // latest buffered input, consumed on the next pulse
	paused     bool
	scoreSaved bool // whether the current game over has been recorded
	best       int  // high score for the session's difficulty, shown in the HUD
	quitting   bool

	scores *ScoreboardModel // non-nil while the scoreboard is open
}

// NewModel creates a new model for the given session options.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Game.Seed == 0 {
		opts.Game.Seed = time.Now().UnixNano()
	}

	width := opts.Width
	height := opts.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	var best int
	if opts.Store != nil {
		if hs, err := opts.Store.HighScore(opts.Difficulty); err == nil {
			best = hs
		}
	}

	return Model{
		game:   game.NewGame(opts.Game),
		screen: core.NewScreen(width, height),
		store:  opts.Store,
		keys:   NewKeyMapper(),
		opts:   opts,
		best:   best,
	}
}

// Init starts the external clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Game.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.scores != nil {
		return m.updateScores(msg)
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in, ctl := m.keys.MapKey(msg)

	switch ctl {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit
	case ControlPause:
		if m.game.Phase() == game.PhaseActive {
			m.paused = !m.paused
		}
		return m, nil
	case ControlScreenshot:
		m.saveScreenshot()
		return m, nil
	case ControlScores:
		return m.openScores()
	}

	// Gameplay input is buffered and consumed on the next clock pulse;
	// within one pulse window the latest key wins.
	if !m.paused && in != game.InputNone {
		m.pending = in
	}
	return m, nil
}

// handleTick feeds one clock pulse to the simulation and records the
// result when a game ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Game.TickInterval)

	// The clock keeps running while paused or browsing scores; the
	// simulation just never sees those pulses.
	if m.paused || m.scores != nil {
		m.pending = game.InputNone
		return m, next
	}

	in := m.pending
	m.pending = game.InputNone
	m.game.Tick(in)

	switch m.game.Phase() {
	case game.PhaseActive:
		m.scoreSaved = false
	case game.PhaseGameOver:
		// Tiles is zero only before the first game has started; games
		// that never cleared a row are not worth recording.
		if !m.scoreSaved && m.game.Tiles() > 0 && m.game.Score() > 0 {
			m.saveResult()
			m.scoreSaved = true
			m.best = core.Max(m.best, m.game.Score())
		}
	}

	return m, next
}

// openScores switches to the scoreboard view. Play freezes until the
// player comes back.
func (m Model) openScores() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	sb := NewScoreboardModel(m.store, m.opts.Difficulty, m.screen.Width(), m.screen.Height())
	m.scores = &sb
	return m, sb.Init()
}

// updateScores routes messages to the scoreboard while it is open.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		if m.game.Phase() == game.PhaseActive {
			m.paused = true
		}
	}
	return m, cmd
}

// saveResult records a finished game. Best effort: play continues even if
// the write fails.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveResult(storage.Result{
		Score:      m.game.Score(),
		Level:      m.game.Level(),
		Rows:       m.game.Rows(),
		Tiles:      m.game.Tiles(),
		Difficulty: m.opts.Difficulty,
		Player:     m.opts.Player,
	})
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	renderFrame(m.screen, m.game, m.paused, m.best)

	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockfall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scores != nil {
		return m.scores.View()
	}

	renderFrame(m.screen, m.game, m.paused, m.best)
	return RenderScreen(m.screen)
}

// Run starts a local Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
