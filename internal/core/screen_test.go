package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(12, 6)

	if s.Width() != 12 || s.Height() != 6 {
		t.Errorf("Dimensions = %dx%d, expected 12x6", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || !cell.Color.IsZero() {
				t.Fatalf("New screen should hold uncolored spaces, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(8, 5)

	s.Set(2, 3, '@')
	if s.Get(2, 3) != '@' {
		t.Errorf("Get(2, 3) = %q, expected '@'", s.Get(2, 3))
	}

	// Writes outside the buffer are dropped without panicking
	s.Set(-1, 0, '!')
	s.Set(8, 0, '!')
	s.Set(0, -1, '!')
	s.Set(0, 5, '!')

	// Reads outside the buffer come back as spaces
	if s.Get(-1, 0) != ' ' || s.Get(8, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(8, 5)
	teal := NewRGB(0, 128, 128)

	s.SetCell(6, 2, '█', teal)
	cell := s.GetCell(6, 2)
	if cell.Rune != '█' || cell.Color != teal {
		t.Errorf("GetCell(6, 2) = %+v, expected colored block", cell)
	}

	// An uncolored Set over the same cell drops the color
	s.Set(6, 2, '.')
	cell = s.GetCell(6, 2)
	if cell.Rune != '.' || !cell.Color.IsZero() {
		t.Errorf("Set should clear the color, got %+v", cell)
	}

	oob := s.GetCell(20, -3)
	if oob.Rune != ' ' || !oob.Color.IsZero() {
		t.Errorf("Out of bounds GetCell = %+v, expected uncolored space", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			s.SetCell(x, y, '#', NewRGB(9, 9, 9))
		}
	}

	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || !cell.Color.IsZero() {
				t.Fatalf("After Clear, expected uncolored space at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 4)

	s.DrawText(3, 1, "drop")
	for i, r := range "drop" {
		if s.Get(3+i, 1) != r {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", r, 3+i, s.Get(3+i, 1))
		}
	}

	// Clipped at the right edge: only "cl" fits
	s.DrawText(8, 0, "clip")
	if s.Get(8, 0) != 'c' || s.Get(9, 0) != 'l' {
		t.Error("Text should be clipped at the right boundary")
	}
}

func TestScreenDrawTextRunes(t *testing.T) {
	s := NewScreen(10, 2)

	// Multi-byte runes still occupy one cell each
	s.DrawText(1, 0, "x─y")
	if s.Get(1, 0) != 'x' || s.Get(2, 0) != '─' || s.Get(3, 0) != 'y' {
		t.Errorf("DrawText should advance one cell per rune, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(12, 3)
	gold := NewRGB(255, 200, 0)

	s.DrawTextColor(2, 1, "Score", gold)
	for i, r := range "Score" {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != r || cell.Color != gold {
			t.Errorf("DrawTextColor: cell (%d, 1) = %+v, expected %q in gold", 2+i, cell, r)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "Go!")
	x := (11 - 3) / 2
	if s.Get(x, 1) != 'G' || s.Get(x+1, 1) != 'o' || s.Get(x+2, 1) != '!' {
		t.Errorf("DrawTextCentered misplaced text, row = %q", s.Row(1))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(8, 8)
	s.DrawRect(NewRect(3, 2, 2, 3), '*')

	for y := 2; y < 5; y++ {
		for x := 3; x < 5; x++ {
			if s.Get(x, y) != '*' {
				t.Errorf("DrawRect: expected '*' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(2, 2) != ' ' || s.Get(5, 4) != ' ' {
		t.Error("DrawRect should not touch cells outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 8)
	r := NewRect(2, 1, 6, 4)
	s.DrawBox(r)

	corners := []struct {
		x, y int
		want rune
	}{
		{2, 1, '┌'},
		{7, 1, '┐'},
		{2, 4, '└'},
		{7, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("Corner (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}

	for x := 3; x < 7; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("Horizontal edge broken at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(2, y) != '│' || s.Get(7, y) != '│' {
			t.Errorf("Vertical edge broken at y=%d", y)
		}
	}

	// Interior stays untouched
	if s.Get(4, 2) != ' ' {
		t.Errorf("Box interior should stay blank, got %q", s.Get(4, 2))
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(9, 9)

	s.DrawHLine(1, 2, 5, '=')
	for x := 1; x < 6; x++ {
		if s.Get(x, 2) != '=' {
			t.Errorf("DrawHLine: expected '=' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}
	if s.Get(6, 2) != ' ' {
		t.Error("DrawHLine should stop after its length")
	}

	s.DrawVLine(7, 1, 4, '|')
	for y := 1; y < 5; y++ {
		if s.Get(7, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (7, %d), got %q", y, s.Get(7, y))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "abcd")
	s.DrawTextColor(0, 1, "efgh", NewRGB(0, 255, 0))
	s.DrawText(0, 2, "ijkl")

	// Colors never leak into the plain string form
	want := "abcd\nefgh\nijkl"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(9, 7)
	s.DrawText(0, 0, "Top")
	s.Set(8, 6, '+')

	// Shrinking keeps the top-left overlap, drops the rest
	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("After shrink, dimensions = %dx%d, expected 5x3", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Top") {
		t.Errorf("Shrink should keep top-left content, row 0 = %q", s.Row(0))
	}

	// Growing blanks the new area
	s.Resize(12, 9)
	if !strings.HasPrefix(s.Row(0), "Top") {
		t.Errorf("Grow should keep content, row 0 = %q", s.Row(0))
	}
	if s.Get(8, 6) != ' ' {
		t.Error("Content dropped by a shrink should not reappear after growing")
	}

	// Same-size resize is a no-op
	s.Resize(12, 9)
	if !strings.HasPrefix(s.Row(0), "Top") {
		t.Error("Same-size resize should not disturb content")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawText(0, 3, "Rows")

	row := s.Row(3)
	if row != "Rows   " {
		t.Errorf("Row(3) = %q, expected %q", row, "Rows   ")
	}

	if s.Row(-1) != "       " || s.Row(5) != "       " {
		t.Error("Out of bounds Row should be all spaces")
	}
}

func TestRGBHex(t *testing.T) {
	cases := []struct {
		name string
		c    RGB
		want string
	}{
		{"red", NewRGB(255, 0, 0), "#ff0000"},
		{"teal", NewRGB(0, 128, 128), "#008080"},
		{"black", RGB{}, "#000000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Hex(); got != tc.want {
				t.Errorf("Hex() = %q, expected %q", got, tc.want)
			}
		})
	}
}
