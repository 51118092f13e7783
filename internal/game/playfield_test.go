package game

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestNewPlayfield(t *testing.T) {
	p := NewPlayfield(10, 20)

	if p.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", p.Width())
	}
	if p.Height() != 20 {
		t.Errorf("Height() = %d, expected 20", p.Height())
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			if p.Occupied(x, y) {
				t.Errorf("New playfield should be empty, cell (%d, %d) occupied", x, y)
			}
			if !p.ColorAt(x, y).IsZero() {
				t.Errorf("Empty cell (%d, %d) should carry the zero color", x, y)
			}
		}
	}
}

func TestPlaceTileAndQueries(t *testing.T) {
	p := NewPlayfield(6, 8)
	red := core.NewRGB(220, 60, 60)

	p.PlaceTile(3, 5, red)

	if !p.Occupied(3, 5) {
		t.Error("Cell (3, 5) should be occupied after PlaceTile")
	}
	if p.ColorAt(3, 5) != red {
		t.Errorf("ColorAt(3, 5) = %v, expected %v", p.ColorAt(3, 5), red)
	}

	// Only the single cell is affected
	count := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 6; x++ {
			if p.Occupied(x, y) {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("Exactly one cell should be occupied, got %d", count)
	}
}

func TestCopyCellAndResetCell(t *testing.T) {
	p := NewPlayfield(6, 8)
	blue := core.NewRGB(80, 120, 230)

	p.PlaceTile(1, 1, blue)
	p.CopyCell(2, 1, 1, 1)

	if !p.Occupied(2, 1) || p.ColorAt(2, 1) != blue {
		t.Errorf("CopyCell should carry full cell state, got occupied=%v color=%v",
			p.Occupied(2, 1), p.ColorAt(2, 1))
	}
	// Source keeps its state until reset
	if !p.Occupied(1, 1) {
		t.Error("CopyCell should not clear the source cell")
	}

	p.ResetCell(1, 1)
	if p.Occupied(1, 1) {
		t.Error("ResetCell should clear occupancy")
	}
	if !p.ColorAt(1, 1).IsZero() {
		t.Errorf("ResetCell should clear color, got %v", p.ColorAt(1, 1))
	}

	// Copying an empty cell overwrites the destination with empty
	p.CopyCell(2, 1, 1, 1)
	if p.Occupied(2, 1) || !p.ColorAt(2, 1).IsZero() {
		t.Error("Copying an empty cell should empty the destination")
	}
}

func TestRowOperations(t *testing.T) {
	p := NewPlayfield(4, 6)
	green := core.NewRGB(80, 200, 90)
	cyan := core.NewRGB(70, 200, 220)

	// Fill row 2 fully, row 3 partially
	for x := 0; x < 4; x++ {
		p.PlaceTile(x, 2, green)
	}
	p.PlaceTile(0, 3, cyan)
	p.PlaceTile(2, 3, cyan)

	if !p.RowFull(2) {
		t.Error("Row 2 should be full")
	}
	if p.RowFull(3) {
		t.Error("Row 3 should not be full")
	}
	if p.RowFull(0) {
		t.Error("Empty row 0 should not be full")
	}

	// CopyRow overwrites the destination across the full width
	p.CopyRow(2, 3)
	for x := 0; x < 4; x++ {
		wantOccupied := x == 0 || x == 2
		if p.Occupied(x, 2) != wantOccupied {
			t.Errorf("After CopyRow, cell (%d, 2) occupied = %v, expected %v",
				x, p.Occupied(x, 2), wantOccupied)
		}
	}
	if p.ColorAt(0, 2) != cyan {
		t.Errorf("CopyRow should carry colors, got %v", p.ColorAt(0, 2))
	}

	p.ResetRow(3)
	for x := 0; x < 4; x++ {
		if p.Occupied(x, 3) {
			t.Errorf("After ResetRow, cell (%d, 3) should be empty", x)
		}
		if !p.ColorAt(x, 3).IsZero() {
			t.Errorf("After ResetRow, cell (%d, 3) should carry the zero color", x)
		}
	}
}

func TestResetAll(t *testing.T) {
	p := NewPlayfield(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			p.PlaceTile(x, y, core.NewRGB(200, 200, 200))
		}
	}

	p.ResetAll()

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if p.Occupied(x, y) {
				t.Errorf("After ResetAll, cell (%d, %d) should be empty", x, y)
			}
			if !p.ColorAt(x, y).IsZero() {
				t.Errorf("After ResetAll, cell (%d, %d) should carry the zero color", x, y)
			}
		}
	}
}

func TestOutOfRangeAbsorbed(t *testing.T) {
	p := NewPlayfield(4, 4)
	white := core.NewRGB(255, 255, 255)

	// Mutations outside the grid must not panic or touch storage
	p.PlaceTile(-1, 0, white)
	p.PlaceTile(0, -1, white)
	p.PlaceTile(4, 0, white)
	p.PlaceTile(0, 4, white)
	p.ResetCell(-1, -1)
	p.CopyCell(0, 0, 9, 9)
	p.CopyCell(9, 9, 0, 0)
	p.CopyRow(0, 7)
	p.CopyRow(7, 0)
	p.ResetRow(-3)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if p.Occupied(x, y) {
				t.Errorf("Out-of-range writes leaked into cell (%d, %d)", x, y)
			}
		}
	}

	// Reads outside the grid return the empty value
	if p.Occupied(-1, 2) || p.Occupied(2, 40) {
		t.Error("Out-of-range Occupied should be false")
	}
	if !p.ColorAt(-5, -5).IsZero() {
		t.Error("Out-of-range ColorAt should be the zero color")
	}
	if p.RowFull(-1) || p.RowFull(4) {
		t.Error("Out-of-range RowFull should be false")
	}
}
