package game

import "github.com/vovakirdan/blockfall/internal/core"

// tilePalette holds the colors new tiles draw from. Fixed and small on
// purpose: color choice is cosmetic and must stay deterministic under a
// given seed.
var tilePalette = []core.RGB{
	core.NewRGB(220, 60, 60),  // red
	core.NewRGB(230, 150, 40), // orange
	core.NewRGB(230, 210, 60), // yellow
	core.NewRGB(80, 200, 90),  // green
	core.NewRGB(70, 200, 220), // cyan
	core.NewRGB(80, 120, 230), // blue
	core.NewRGB(170, 90, 220), // purple
}

// Palette returns a copy of the tile color palette, in draw order.
// Renderers use it to precompute terminal styles.
func Palette() []core.RGB {
	p := make([]core.RGB, len(tilePalette))
	copy(p, tilePalette)
	return p
}

// nextColor picks the color for a freshly spawned tile: a seeded draw
// from the palette, nudged to the next entry when it would repeat the
// previous tile's color.
func (g *Game) nextColor() core.RGB {
	i := g.rng.Intn(len(tilePalette))
	if i == g.lastColorIdx {
		i = (i + 1) % len(tilePalette)
	}
	g.lastColorIdx = i
	return tilePalette[i]
}
