package loop

import "github.com/thruflo/pipemaze/internal/grid"

// Distances returns, for every loop tile, the fewest loop edges between it
// and the origin. On a single cycle of length L the i-th tile is
// min(i, L-i) steps away.
func (l *Loop) Distances() map[grid.Location]int {
	n := len(l.Path)
	out := make(map[grid.Location]int, n)
	for i, loc := range l.Path {
		out[loc] = min(i, n-i)
	}
	return out
}

// Furthest returns the largest value in Distances: the tile furthest from
// the origin along the loop.
func (l *Loop) Furthest() int {
	furthest := 0
	for _, d := range l.Distances() {
		furthest = max(furthest, d)
	}
	return furthest
}

// BreadthFirstDistances layers the grid outward from the origin, following
// only mutually connected tiles. For a well-formed grid it reaches exactly
// the loop and agrees with Distances.
func BreadthFirstDistances(g *grid.Grid) map[grid.Location]int {
	origin := g.Origin()
	out := map[grid.Location]int{origin.Location: 0}
	frontier := []grid.Tile{origin}
	for steps := 1; len(frontier) > 0; steps++ {
		var next []grid.Tile
		for _, t := range frontier {
			for _, n := range g.ConnectedNeighbors(t) {
				if _, seen := out[n.Location]; seen {
					continue
				}
				out[n.Location] = steps
				next = append(next, n)
			}
		}
		frontier = next
	}
	return out
}
