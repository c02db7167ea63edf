// Package solver runs the full pipe-loop analysis: parse the grid, trace
// the loop, measure it, and count the tiles it encloses.
package solver

import (
	"context"
	"fmt"
	"os"

	"github.com/thruflo/pipemaze/internal/enclosure"
	"github.com/thruflo/pipemaze/internal/grid"
	"github.com/thruflo/pipemaze/internal/logging"
	"github.com/thruflo/pipemaze/internal/loop"
)

// Options configures a Solve run.
type Options struct {
	// Workers is the number of goroutines used to classify rows. Zero or
	// one classifies sequentially.
	Workers int
	// Logger receives progress entries. Nil uses the default logger.
	Logger *logging.Logger
}

// Result holds the two answers and a summary of the loop.
type Result struct {
	Furthest   int    `json:"furthest"`
	Enclosed   int    `json:"enclosed"`
	LoopLength int    `json:"loop_length"`
	Winding    string `json:"winding"`
}

// Analysis is everything derived from one grid.
type Analysis struct {
	Grid      *grid.Grid
	Loop      *loop.Loop
	Enclosure enclosure.Map
	Result    Result
}

// Solve analyzes grid text.
func Solve(ctx context.Context, text string, opts Options) (*Analysis, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}

	g, err := grid.Parse(text)
	if err != nil {
		return nil, err
	}
	log.Debug("grid parsed", "width", g.Width(), "height", g.Height(), "origin", g.Origin().Location)

	l, err := loop.Trace(g)
	if err != nil {
		return nil, err
	}
	orientation := l.Orientation()
	log.Debug("loop traced", "length", l.Len(), "winding", orientation)
	if log.Enabled(logging.LevelDebug) {
		log.Debug("distances cross-checked", "agree", distancesAgree(l.Distances(), loop.BreadthFirstDistances(g)))
	}

	var m enclosure.Map
	if opts.Workers > 1 {
		m, err = enclosure.ClassifyParallel(ctx, g, l, opts.Workers)
		if err != nil {
			return nil, fmt.Errorf("failed to classify tiles: %w", err)
		}
	} else {
		m = enclosure.Classify(g, l)
	}

	a := &Analysis{
		Grid:      g,
		Loop:      l,
		Enclosure: m,
		Result: Result{
			Furthest:   l.Furthest(),
			Enclosed:   m.Count(),
			LoopLength: l.Len(),
			Winding:    orientation.String(),
		},
	}
	log.Info("grid solved", "furthest", a.Result.Furthest, "enclosed", a.Result.Enclosed, "workers", max(opts.Workers, 1))
	return a, nil
}

// distancesAgree reports whether the cycle distances and the breadth-first
// layering from the origin cover the same tiles with the same values.
func distancesAgree(cycle, layered map[grid.Location]int) bool {
	if len(cycle) != len(layered) {
		return false
	}
	for loc, d := range cycle {
		if got, ok := layered[loc]; !ok || got != d {
			return false
		}
	}
	return true
}

// SolveFile reads the grid at path and analyzes it.
func SolveFile(ctx context.Context, path string, opts Options) (*Analysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = logging.With("file", path)
	}
	return Solve(ctx, string(data), opts)
}
