// Package enclosure decides which tiles off the loop are enclosed by it.
//
// Each tile casts a ray to the right along its row. The first loop tile the
// ray crosses, together with the loop's winding, tells which side of the
// boundary the tile is on. Loop tiles that only run horizontally lie along
// the ray rather than across it and are skipped.
package enclosure

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/thruflo/pipemaze/internal/grid"
	"github.com/thruflo/pipemaze/internal/loop"
)

// Map holds the classification of every tile not on the loop: true for
// interior, false for exterior.
type Map map[grid.Location]bool

// Count returns the number of interior tiles.
func (m Map) Count() int {
	n := 0
	for _, inside := range m {
		if inside {
			n++
		}
	}
	return n
}

// Classifier holds the loop geometry shared by every per-tile decision.
type Classifier struct {
	grid        *grid.Grid
	loop        *loop.Loop
	tangents    map[grid.Location]loop.Tangent
	orientation loop.Orientation
}

// NewClassifier prepares a classifier for the loop traced on g.
func NewClassifier(g *grid.Grid, l *loop.Loop) *Classifier {
	return &Classifier{
		grid:        g,
		loop:        l,
		tangents:    l.Tangents(),
		orientation: l.Orientation(),
	}
}

// Interior reports whether the non-loop tile at loc is enclosed.
func (c *Classifier) Interior(loc grid.Location) bool {
	for col := loc.Col + 1; col < c.grid.Width(); col++ {
		t, ok := c.tangents[grid.Location{Col: col, Row: loc.Row}]
		if !ok {
			continue
		}
		switch v := t.Vertical(); {
		case v == 0:
			continue
		case c.orientation == loop.Clockwise:
			return v > 0
		default:
			return v < 0
		}
	}
	return false
}

// classifyRow writes the result for every non-loop tile of row r into out.
func (c *Classifier) classifyRow(r int, out Map) {
	for _, t := range c.grid.Row(r) {
		if c.loop.Contains(t.Location) {
			continue
		}
		out[t.Location] = c.Interior(t.Location)
	}
}

// Classify labels every tile of g that is not on l.
func Classify(g *grid.Grid, l *loop.Loop) Map {
	c := NewClassifier(g, l)
	out := make(Map, g.Width()*g.Height()-l.Len())
	for r := 0; r < g.Height(); r++ {
		c.classifyRow(r, out)
	}
	return out
}

// ClassifyParallel is Classify with rows spread over at most workers
// goroutines. Each row is classified into its own map and merged once all
// rows are done.
func ClassifyParallel(ctx context.Context, g *grid.Grid, l *loop.Loop, workers int) (Map, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", workers)
	}

	c := NewClassifier(g, l)
	rows := make([]Map, g.Height())

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for r := 0; r < g.Height(); r++ {
		r := r
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			rows[r] = make(Map, g.Width())
			c.classifyRow(r, rows[r])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(Map, g.Width()*g.Height()-l.Len())
	for _, row := range rows {
		for loc, inside := range row {
			out[loc] = inside
		}
	}
	return out, nil
}
