package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyGameplay(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want game.Input
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, game.InputLeft},
		{"a", runeKey('a'), game.InputLeft},
		{"h", runeKey('h'), game.InputLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, game.InputRight},
		{"d", runeKey('d'), game.InputRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, game.InputDown},
		{"s", runeKey('s'), game.InputDown},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, game.InputUp},
		{"w", runeKey('w'), game.InputUp},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, game.InputEnter},
		{"unmapped rune", runeKey('x'), game.InputNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ctl := km.MapKey(tt.msg)
			if in != tt.want {
				t.Errorf("MapKey(%q) input = %v, want %v", tt.msg.String(), in, tt.want)
			}
			if ctl != ControlNone {
				t.Errorf("MapKey(%q) control = %v, want ControlNone", tt.msg.String(), ctl)
			}
		})
	}
}

func TestMapKeyControls(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Control
	}{
		{"q", runeKey('q'), ControlQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ControlQuit},
		{"p", runeKey('p'), ControlPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ControlPause},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, ControlScreenshot},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, ControlScores},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ctl := km.MapKey(tt.msg)
			if ctl != tt.want {
				t.Errorf("MapKey(%q) control = %v, want %v", tt.msg.String(), ctl, tt.want)
			}
			if in != game.InputNone {
				t.Errorf("MapKey(%q) input = %v, want InputNone", tt.msg.String(), in)
			}
		})
	}
}
