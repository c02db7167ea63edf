package loop

// Orientation is the winding sense of a trace in the column-right, row-down
// convention.
type Orientation int

const (
	Clockwise Orientation = iota
	CounterClockwise
)

func (o Orientation) String() string {
	if o == Clockwise {
		return "clockwise"
	}
	return "counterclockwise"
}

// Reverse returns the opposite winding.
func (o Orientation) Reverse() Orientation {
	if o == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

// SignedArea returns twice the shoelace area of the path. With rows
// growing downward, a clockwise trace has a positive area.
func (l *Loop) SignedArea() int {
	area := 0
	for i, a := range l.Path {
		b := l.at(i + 1)
		area += a.Col*b.Row - b.Col*a.Row
	}
	return area
}

// Orientation reports the winding of the trace from its signed area.
func (l *Loop) Orientation() Orientation {
	if l.SignedArea() > 0 {
		return Clockwise
	}
	return CounterClockwise
}

// CornerOrientation reports the winding from the tangent at the smallest
// loop location, which is always a convex top-left corner: a clockwise
// loop must leave it heading right or arrive heading up.
func (l *Loop) CornerOrientation() Orientation {
	corner := l.Path[0]
	for _, loc := range l.Path[1:] {
		if loc.Less(corner) {
			corner = loc
		}
	}
	v := l.Tangents()[corner].Vector()
	if v.DC > 0 || v.DR < 0 {
		return Clockwise
	}
	return CounterClockwise
}
