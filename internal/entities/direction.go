package entities

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// DirDelta returns the vertical unit step for d.
func DirDelta(d Direction) (dy int) {
	switch d {
	case DirUp:
		return -1
	case DirDown:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}
