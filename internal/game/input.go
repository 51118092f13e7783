package game

// Input is one decoded input symbol delivered alongside a clock pulse.
// The simulation consumes at most one symbol per tick; key decoding and
// per-tick coalescing are the frontend's job.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputDown // hard drop
	InputEnter
	InputUp
)

// String returns a human-readable name for the input symbol.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "None"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	case InputDown:
		return "Down"
	case InputEnter:
		return "Enter"
	case InputUp:
		return "Up"
	default:
		return "Unknown"
	}
}
