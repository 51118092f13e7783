package core

import "fmt"

// RGB is a 24-bit foreground color for a screen cell or a board tile.
// The zero value is the "no color" sentinel: renderers fall back to the
// terminal default, and empty board cells always carry it.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a color from its three channels.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// IsZero reports whether the color is the empty sentinel.
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Hex returns the color as a "#rrggbb" string understood by lipgloss.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
