package cursor

// Direction identifies a single-step cursor movement.
type Direction int

const (
	// DirLeft moves one column toward the start of the row.
	DirLeft Direction = iota
	// DirRight moves one column toward the end of the row.
	DirRight
	// DirUp moves one row up.
	DirUp
	// DirDown moves one row down.
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}
