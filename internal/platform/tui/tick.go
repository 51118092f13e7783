// Package tui provides the Bubble Tea integration for blockfall.
// It handles the terminal UI loop, input mapping, rendering, and the
// scoreboard, both for local play and for SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one external clock pulse for the simulation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that delivers the next clock pulse
// after the configured interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
