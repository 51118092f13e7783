package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/game"
)

// Board geometry: every grid cell is drawn two runes wide so tiles come
// out roughly square in a terminal font.
const (
	cellWidth = 2
	tileRune  = '█'
	hudHeight = 2
)

// plainStyle renders uncolored cells with the terminal default.
var plainStyle = lipgloss.NewStyle()

// paletteStyles maps each tile color to its lipgloss style. Built once at
// startup so concurrent SSH sessions render without touching a shared
// mutable map.
var paletteStyles = buildPaletteStyles()

func buildPaletteStyles() map[core.RGB]lipgloss.Style {
	styles := make(map[core.RGB]lipgloss.Style)
	for _, c := range game.Palette() {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return styles
}

// styleFor returns the style for a cell color. Colors outside the palette
// get a one-off style rather than a cache entry.
func styleFor(c core.RGB) lipgloss.Style {
	if c.IsZero() {
		return plainStyle
	}
	if s, ok := paletteStyles[c]; ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// RenderScreen converts a Screen buffer to a styled string. Same-colored
// runs are styled as one unit to keep the ANSI escape count down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// renderFrame draws one complete play frame: HUD, the bordered board with
// its tiles, the key hint line, and whichever overlay the current state
// calls for. best is the stored high score for the session's difficulty.
func renderFrame(dst *core.Screen, g *game.Game, paused bool, best int) {
	dst.Clear()

	renderHUD(dst, g, best)

	boardW := g.Width()*cellWidth + 2
	boardH := g.Height() + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight+1 {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	renderBoard(dst, g)
	renderHints(dst)

	switch {
	case g.Phase() == game.PhaseGameOver && g.Tiles() == 0:
		renderOverlay(dst, "BLOCKFALL", "Press Enter to start")
	case g.Phase() == game.PhaseGameOver:
		renderOverlay(dst, "Game Over",
			fmt.Sprintf("Final score: %d", g.Score()),
			"Press Enter to restart")
	case paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar and its separator. Speed is the
// current gravity threshold in clock pulses.
func renderHUD(dst *core.Screen, g *game.Game, best int) {
	hud := fmt.Sprintf(" blockfall  Score: %d  Level: %d  Rows: %d  Tiles: %d  Speed: %d  Best: %d",
		g.Score(), g.Level(), g.Rows(), g.Tiles(), g.TicksPerStep(), best)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the bordered playfield with every occupied cell in
// its tile color. The active tile is an occupied cell like any other.
func renderBoard(dst *core.Screen, g *game.Game) {
	boardW := g.Width()*cellWidth + 2
	boardH := g.Height() + 2
	x0 := (dst.Width() - boardW) / 2
	y0 := hudHeight

	dst.DrawBox(core.NewRect(x0, y0, boardW, boardH))

	for y := range g.Height() {
		for x := range g.Width() {
			if !g.Occupied(x, y) {
				continue
			}
			c := g.ColorAt(x, y)
			sx := x0 + 1 + x*cellWidth
			sy := y0 + 1 + y
			dst.SetCell(sx, sy, tileRune, c)
			dst.SetCell(sx+1, sy, tileRune, c)
		}
	}
}

// renderHints draws the key reference on the bottom line.
func renderHints(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()-1, "a/d move   s/space drop   p pause   tab scores   q quit")
}

// renderOverlay draws a centered message box over the board, one text row
// per line with a blank row between.
func renderOverlay(dst *core.Screen, lines ...string) {
	boxW := 0
	for _, line := range lines {
		boxW = core.Max(boxW, len(line))
	}
	boxW += 6
	boxH := 2*len(lines) + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+2*i, line)
	}
}
