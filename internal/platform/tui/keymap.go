package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/game"
)

// Control is a frontend-level action that never reaches the simulation.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlPause
	ControlScreenshot
	ControlScores
)

// KeyMapper translates Bubble Tea key messages to game inputs and
// frontend controls. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message. At most one of the results is set:
// control keys return InputNone, gameplay keys return ControlNone, and
// unmapped keys return both zero values.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (game.Input, Control) {
	switch msg.String() {
	case "ctrl+c", "q":
		return game.InputNone, ControlQuit
	case "p", "esc":
		return game.InputNone, ControlPause
	case "ctrl+s":
		return game.InputNone, ControlScreenshot
	case "tab":
		return game.InputNone, ControlScores
	}

	switch msg.String() {
	case "left", "a", "h":
		return game.InputLeft, ControlNone
	case "right", "d", "l":
		return game.InputRight, ControlNone
	case "down", "s", "j", " ": // hard drop
		return game.InputDown, ControlNone
	case "up", "w", "k":
		return game.InputUp, ControlNone
	case "enter":
		return game.InputEnter, ControlNone
	}

	return game.InputNone, ControlNone
}
