package grid

// Connects reports whether tile a extends a connection into tile b and b
// accepts it. The tiles must be orthogonally adjacent.
//
// The origin accepts a connection from any side, and initiates one only
// toward a neighbour that opens back at it. This is how the origin's shape
// is discovered without ever being resolved to a symbol.
func Connects(a, b Tile) bool {
	d, ok := DirectionTo(a.Location, b.Location)
	if !ok {
		return false
	}
	switch {
	case a.Symbol == Origin && b.Symbol == Origin:
		return false
	case a.Symbol == Origin:
		return b.Symbol.Opens(d.Opposite())
	case b.Symbol == Origin:
		return a.Symbol.Opens(d)
	default:
		return a.Symbol.Opens(d) && b.Symbol.Opens(d.Opposite())
	}
}
