// Package grid holds the immutable pipe map and the connectivity rules
// between neighbouring tiles.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedGrid is returned for empty input, ragged rows, symbols
	// outside the alphabet, or more than one origin.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrNoOrigin is returned when the grid has no origin tile.
	ErrNoOrigin = errors.New("no origin tile")
)

// Location identifies a tile by column and row. Row 0 is the top row.
type Location struct {
	Col int
	Row int
}

func (l Location) String() string {
	return fmt.Sprintf("(c%d, r%d)", l.Col, l.Row)
}

// Step returns the location one tile away in direction d.
func (l Location) Step(d Direction) Location {
	v := d.Vector()
	return Location{Col: l.Col + v.DC, Row: l.Row + v.DR}
}

// Less orders locations by column, then row.
func (l Location) Less(other Location) bool {
	if l.Col != other.Col {
		return l.Col < other.Col
	}
	return l.Row < other.Row
}

// Tile is a single cell of the grid.
type Tile struct {
	Location
	Symbol Symbol
}

// Grid is a rectangular, immutable map of tiles.
type Grid struct {
	tiles  [][]Tile
	width  int
	height int
	origin Location
}

// Parse builds a Grid from text with one row per line. Carriage returns
// and trailing blank lines are ignored.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}

	width := len(lines[0])
	g := &Grid{
		tiles:  make([][]Tile, len(lines)),
		width:  width,
		height: len(lines),
	}

	origins := 0
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedGrid, row, len(line), width)
		}
		g.tiles[row] = make([]Tile, width)
		for col := 0; col < width; col++ {
			sym, ok := ParseSymbol(line[col])
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at row %d column %d", ErrMalformedGrid, line[col], row, col)
			}
			loc := Location{Col: col, Row: row}
			if sym == Origin {
				origins++
				g.origin = loc
			}
			g.tiles[row][col] = Tile{Location: loc, Symbol: sym}
		}
	}

	switch {
	case origins == 0:
		return nil, ErrNoOrigin
	case origins > 1:
		return nil, fmt.Errorf("%w: %d origin tiles", ErrMalformedGrid, origins)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Origin returns the origin tile.
func (g *Grid) Origin() Tile {
	return g.tiles[g.origin.Row][g.origin.Col]
}

// Contains reports whether loc lies inside the grid.
func (g *Grid) Contains(loc Location) bool {
	return loc.Col >= 0 && loc.Col < g.width && loc.Row >= 0 && loc.Row < g.height
}

// Tile returns the tile at loc. The second result is false when loc is
// outside the grid.
func (g *Grid) Tile(loc Location) (Tile, bool) {
	if !g.Contains(loc) {
		return Tile{}, false
	}
	return g.tiles[loc.Row][loc.Col], true
}

// Row returns the tiles of row r, left to right. The slice must not be
// modified.
func (g *Grid) Row(r int) []Tile {
	return g.tiles[r]
}

// ConnectedNeighbors returns the orthogonal neighbours of t that are
// connected to it, in Up, Right, Down, Left order.
func (g *Grid) ConnectedNeighbors(t Tile) []Tile {
	var out []Tile
	for _, d := range Directions {
		n, ok := g.Tile(t.Step(d))
		if ok && Connects(t, n) {
			out = append(out, n)
		}
	}
	return out
}

// InferOrigin returns the pipe symbol the origin must have, given which of
// its neighbours connect into it. The second result is false when the
// origin does not have exactly two connecting neighbours.
func (g *Grid) InferOrigin() (Symbol, bool) {
	o := g.Origin()
	var open []Direction
	for _, d := range Directions {
		n, ok := g.Tile(o.Step(d))
		if ok && Connects(o, n) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return Ground, false
	}
	return SymbolFor(open[0], open[1])
}

// String renders the grid back to its text form.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		for _, t := range g.tiles[r] {
			sb.WriteByte(byte(t.Symbol))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
