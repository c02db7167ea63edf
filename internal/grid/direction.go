package grid

// Direction is one of the four orthogonal headings on the grid.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

var directionNames = [4]string{"up", "right", "down", "left"}

func (d Direction) String() string {
	if d < Up || d > Left {
		return "invalid"
	}
	return directionNames[d]
}

// Vector is a step or accumulated turn. Each component is -1, 0 or 1;
// DR grows downward.
type Vector struct {
	DC int
	DR int
}

var directionVectors = [4]Vector{
	Up:    {DC: 0, DR: -1},
	Right: {DC: 1, DR: 0},
	Down:  {DC: 0, DR: 1},
	Left:  {DC: -1, DR: 0},
}

// Vector returns the unit step for d.
func (d Direction) Vector() Vector {
	return directionVectors[d]
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// DirectionTo returns the heading from a to b when they are orthogonally
// adjacent.
func DirectionTo(a, b Location) (Direction, bool) {
	v := Vector{DC: b.Col - a.Col, DR: b.Row - a.Row}
	for _, d := range Directions {
		if directionVectors[d] == v {
			return d, true
		}
	}
	return 0, false
}
