package game

import "github.com/vovakirdan/blockfall/internal/core"

// Cell is one playfield slot. Color is meaningful only while Occupied;
// empty cells always carry the zero RGB sentinel.
type Cell struct {
	Occupied bool
	Color    core.RGB
}

// Playfield owns the dense row-major cell storage for one fixed-size grid.
// Coordinates run x to the right and y downward, with index = y*width + x.
// Bounds reasoning belongs to the caller; the playfield only guards its
// backing slice, absorbing out-of-range coordinates as no-ops and empty
// reads.
type Playfield struct {
	width  int
	height int
	cells  []Cell
}

// NewPlayfield allocates a cleared grid. Dimensions are fixed for the
// lifetime of the playfield.
func NewPlayfield(width, height int) *Playfield {
	return &Playfield{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the grid width in cells.
func (p *Playfield) Width() int {
	return p.width
}

// Height returns the grid height in cells.
func (p *Playfield) Height() int {
	return p.height
}

func (p *Playfield) idx(x, y int) int {
	return y*p.width + x
}

func (p *Playfield) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Occupied reports whether the cell at (x, y) holds a tile.
// Out-of-range coordinates read as unoccupied.
func (p *Playfield) Occupied(x, y int) bool {
	if !p.inBounds(x, y) {
		return false
	}
	return p.cells[p.idx(x, y)].Occupied
}

// ColorAt returns the tile color at (x, y). Empty and out-of-range cells
// return the zero RGB sentinel.
func (p *Playfield) ColorAt(x, y int) core.RGB {
	if !p.inBounds(x, y) {
		return core.RGB{}
	}
	return p.cells[p.idx(x, y)].Color
}

// PlaceTile marks the cell at (x, y) occupied with the given color.
// No effect beyond the single cell.
func (p *Playfield) PlaceTile(x, y int, c core.RGB) {
	if !p.inBounds(x, y) {
		return
	}
	p.cells[p.idx(x, y)] = Cell{Occupied: true, Color: c}
}

// CopyCell overwrites the destination cell's full state, occupancy and
// color, with the source cell's.
func (p *Playfield) CopyCell(toX, toY, fromX, fromY int) {
	if !p.inBounds(toX, toY) || !p.inBounds(fromX, fromY) {
		return
	}
	p.cells[p.idx(toX, toY)] = p.cells[p.idx(fromX, fromY)]
}

// ResetCell clears the cell at (x, y) back to empty.
func (p *Playfield) ResetCell(x, y int) {
	if !p.inBounds(x, y) {
		return
	}
	p.cells[p.idx(x, y)] = Cell{}
}

// CopyRow overwrites every cell in toRow with the corresponding cell in
// fromRow, across the full width.
func (p *Playfield) CopyRow(toRow, fromRow int) {
	if toRow < 0 || toRow >= p.height || fromRow < 0 || fromRow >= p.height {
		return
	}
	copy(p.cells[toRow*p.width:(toRow+1)*p.width], p.cells[fromRow*p.width:(fromRow+1)*p.width])
}

// ResetRow clears every cell in the row to empty.
func (p *Playfield) ResetRow(row int) {
	if row < 0 || row >= p.height {
		return
	}
	for x := 0; x < p.width; x++ {
		p.cells[p.idx(x, row)] = Cell{}
	}
}

// RowFull reports whether every cell in the row is occupied.
// Out-of-range rows read as not full.
func (p *Playfield) RowFull(row int) bool {
	if row < 0 || row >= p.height {
		return false
	}
	for x := 0; x < p.width; x++ {
		if !p.cells[p.idx(x, row)].Occupied {
			return false
		}
	}
	return true
}

// ResetAll clears every row; used on construction and on new-game.
func (p *Playfield) ResetAll() {
	for i := range p.cells {
		p.cells[i] = Cell{}
	}
}
