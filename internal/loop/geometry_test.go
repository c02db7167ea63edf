package loop_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/thruflo/pipemaze/internal/loop"
	"github.com/thruflo/pipemaze/internal/testutil"
)

func TestDistances(t *testing.T) {
	_, l := mustTrace(t, testutil.SquareLoop)
	d := l.Distances()

	assert.Equal(t, 0, d[loc(1, 1)])
	assert.Equal(t, 1, d[loc(2, 1)])
	assert.Equal(t, 1, d[loc(1, 2)])
	assert.Equal(t, 3, d[loc(3, 2)])
	assert.Equal(t, 4, d[loc(3, 3)])
	_, ok := d[loc(2, 2)]
	assert.False(t, ok)
}

func TestFurthest(t *testing.T) {
	for _, s := range testutil.Samples() {
		t.Run(s.Name, func(t *testing.T) {
			_, l := mustTrace(t, s.Grid)
			assert.Equal(t, s.Furthest, l.Furthest())
			assert.Equal(t, l.Len()/2, l.Furthest())
		})
	}
}

func TestBreadthFirstDistancesMatchCycleDistances(t *testing.T) {
	for _, s := range testutil.Samples() {
		t.Run(s.Name, func(t *testing.T) {
			g, l := mustTrace(t, s.Grid)
			if diff := cmp.Diff(l.Distances(), loop.BreadthFirstDistances(g)); diff != "" {
				t.Errorf("distance mismatch (-cycle +bfs):\n%s", diff)
			}
		})
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		name string
		grid string
		want loop.Orientation
	}{
		{"square", testutil.SquareLoop, loop.Clockwise},
		{"perimeter", testutil.PerimeterLoop, loop.Clockwise},
		{"tangled", testutil.TangledLoop, loop.Clockwise},
		{"scattered ground", testutil.ScatteredGround, loop.CounterClockwise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, l := mustTrace(t, tt.grid)
			assert.Equal(t, tt.want, l.Orientation())
		})
	}
}

func TestOrientationAgreesWithCorner(t *testing.T) {
	for _, s := range testutil.Samples() {
		t.Run(s.Name, func(t *testing.T) {
			g, fwd := mustTrace(t, s.Grid)
			rev, err := loop.TraceReverse(g)
			assert.NoError(t, err)

			assert.Equal(t, fwd.Orientation(), fwd.CornerOrientation())
			assert.Equal(t, rev.Orientation(), rev.CornerOrientation())
		})
	}
}

func TestSignedArea(t *testing.T) {
	_, l := mustTrace(t, testutil.SquareLoop)
	// The square's centre line encloses a 2x2 area.
	assert.Equal(t, 8, l.SignedArea())

	_, l = mustTrace(t, testutil.PerimeterLoop)
	assert.Equal(t, 32, l.SignedArea())
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "clockwise", loop.Clockwise.String())
	assert.Equal(t, "counterclockwise", loop.CounterClockwise.String())
	assert.Equal(t, loop.Clockwise, loop.CounterClockwise.Reverse())
}
