package game

// Snapshot captures the machine's counters and active-tile position for
// determinism testing. Board contents are compared separately through the
// cell queries.
type Snapshot struct {
	Phase        Phase
	TickCount    int
	TicksPerStep int
	Tiles        int
	Rows         int
	Score        int
	Level        int
	ActiveX      int
	ActiveY      int
}

// Snapshot returns the current machine snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:        g.phase,
		TickCount:    g.tickCount,
		TicksPerStep: g.ticksPerStep,
		Tiles:        g.tilesPlaced,
		Rows:         g.rowsCleared,
		Score:        g.score,
		Level:        g.level,
		ActiveX:      g.activeX,
		ActiveY:      g.activeY,
	}
}
