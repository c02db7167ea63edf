package loop

import (
	"errors"
	"fmt"

	"github.com/thruflo/pipemaze/internal/grid"
)

var (
	// ErrDegenerateOrigin is returned when the origin does not have exactly
	// two connecting neighbours.
	ErrDegenerateOrigin = errors.New("degenerate origin")
	// ErrBrokenLoop is returned when the walk from the origin dead-ends or
	// revisits a tile before returning.
	ErrBrokenLoop = errors.New("broken loop")
)

// Loop is the closed cycle of tiles through the origin, in traversal order.
type Loop struct {
	// Path starts at the origin. The step from the last element back to
	// Path[0] closes the loop.
	Path []grid.Location

	index map[grid.Location]int
}

// Trace walks the loop from the origin, leaving through the first
// connected neighbour in Up, Right, Down, Left order.
func Trace(g *grid.Grid) (*Loop, error) {
	return trace(g, 0)
}

// TraceReverse walks the same loop in the opposite direction to Trace.
func TraceReverse(g *grid.Grid) (*Loop, error) {
	return trace(g, 1)
}

func trace(g *grid.Grid, exit int) (*Loop, error) {
	origin := g.Origin()
	exits := g.ConnectedNeighbors(origin)
	if len(exits) != 2 {
		return nil, fmt.Errorf("%w: origin %v has %d connecting neighbours", ErrDegenerateOrigin, origin.Location, len(exits))
	}

	l := &Loop{
		Path:  []grid.Location{origin.Location},
		index: map[grid.Location]int{origin.Location: 0},
	}

	prev, cur := origin, exits[exit]
	for cur.Symbol != grid.Origin {
		if _, seen := l.index[cur.Location]; seen {
			return nil, fmt.Errorf("%w: revisited %v", ErrBrokenLoop, cur.Location)
		}
		l.index[cur.Location] = len(l.Path)
		l.Path = append(l.Path, cur.Location)

		next, ok := nextTile(g, cur, prev)
		if !ok {
			return nil, fmt.Errorf("%w: dead end at %v", ErrBrokenLoop, cur.Location)
		}
		prev, cur = cur, next
	}

	return l, nil
}

// nextTile returns the tile connected to cur that is not prev.
func nextTile(g *grid.Grid, cur, prev grid.Tile) (grid.Tile, bool) {
	for _, n := range g.ConnectedNeighbors(cur) {
		if n.Location != prev.Location {
			return n, true
		}
	}
	return grid.Tile{}, false
}

// Len returns the number of tiles on the loop.
func (l *Loop) Len() int {
	return len(l.Path)
}

// Contains reports whether loc is on the loop.
func (l *Loop) Contains(loc grid.Location) bool {
	_, ok := l.index[loc]
	return ok
}

// at returns the path element at i, wrapping around the cycle.
func (l *Loop) at(i int) grid.Location {
	n := len(l.Path)
	return l.Path[((i%n)+n)%n]
}
