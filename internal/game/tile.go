package game

// Tile movement operates on the one privileged coordinate the Game holds,
// the active tile position. Every primitive is a short sequence of
// playfield calls; a rejected move changes nothing and reports false.

// spawn places a fresh tile at (x, y) and makes it the active tile.
// It fails without touching the board when the target cell is already
// occupied, which signals game over upstream when it happens at the
// spawn row.
func (g *Game) spawn(x, y int) bool {
	if g.field.Occupied(x, y) {
		return false
	}
	g.field.PlaceTile(x, y, g.nextColor())
	g.activeX, g.activeY = x, y
	return true
}

// moveLeft slides the active tile one column left.
func (g *Game) moveLeft() bool {
	return g.moveBy(-1, 0)
}

// moveRight slides the active tile one column right.
func (g *Game) moveRight() bool {
	return g.moveBy(1, 0)
}

// moveDown slides the active tile one row toward the floor.
func (g *Game) moveDown() bool {
	return g.moveBy(0, 1)
}

// moveBy steps the active tile by one cell. The move is rejected when the
// neighbor lies outside the grid or is occupied; otherwise the cell state
// is copied over, the old slot is reset, and the active position follows.
func (g *Game) moveBy(dx, dy int) bool {
	nx, ny := g.activeX+dx, g.activeY+dy
	if nx < 0 || nx >= g.field.Width() || ny < 0 || ny >= g.field.Height() {
		return false
	}
	if g.field.Occupied(nx, ny) {
		return false
	}
	g.field.CopyCell(nx, ny, g.activeX, g.activeY)
	g.field.ResetCell(g.activeX, g.activeY)
	g.activeX, g.activeY = nx, ny
	return true
}

// dropToFloor repeatedly steps the active tile down until it lands.
// Bounded by the grid height, so it always finishes within the call.
func (g *Game) dropToFloor() {
	for g.moveDown() {
	}
}
