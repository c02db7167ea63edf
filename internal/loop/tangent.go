package loop

import "github.com/thruflo/pipemaze/internal/grid"

// Tangent records the heading of travel into and out of a loop tile.
// It is a geometric sign indicator, not a movement.
type Tangent struct {
	In  grid.Direction
	Out grid.Direction
}

// Vertical returns the vertical component of the tangent: +1 if the loop
// passes downward through the tile, -1 if upward, 0 if it only runs
// horizontally.
func (t Tangent) Vertical() int {
	switch {
	case t.In.Vertical():
		return t.In.Vector().DR
	case t.Out.Vertical():
		return t.Out.Vector().DR
	}
	return 0
}

// Horizontal is the horizontal counterpart of Vertical.
func (t Tangent) Horizontal() int {
	switch {
	case !t.In.Vertical():
		return t.In.Vector().DC
	case !t.Out.Vertical():
		return t.Out.Vector().DC
	}
	return 0
}

// Vector combines both components. Straight tiles carry an axis vector,
// bends a diagonal one.
func (t Tangent) Vector() grid.Vector {
	return grid.Vector{DC: t.Horizontal(), DR: t.Vertical()}
}

// Tangents derives the tangent of every loop tile from its predecessor and
// successor on the path. The origin's legs are the closing step and the
// first step.
func (l *Loop) Tangents() map[grid.Location]Tangent {
	out := make(map[grid.Location]Tangent, len(l.Path))
	for i, loc := range l.Path {
		in, _ := grid.DirectionTo(l.at(i-1), loc)
		next, _ := grid.DirectionTo(loc, l.at(i+1))
		out[loc] = Tangent{In: in, Out: next}
	}
	return out
}
