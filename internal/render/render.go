// Package render draws an analyzed grid: loop tiles as box-drawing pipes,
// enclosed tiles as I and the rest as O.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/thruflo/pipemaze/internal/grid"
	"github.com/thruflo/pipemaze/internal/loop"
)

// Marks used for non-loop tiles.
const (
	InteriorMark = "I"
	ExteriorMark = "O"
)

var boxDrawing = map[grid.Symbol]string{
	grid.Vertical:   "│",
	grid.Horizontal: "─",
	grid.BendNE:     "└",
	grid.BendNW:     "┘",
	grid.BendSW:     "┐",
	grid.BendSE:     "┌",
}

// Options controls rendering.
type Options struct {
	// Color styles loop, interior and exterior tiles.
	Color bool
	// ShowOrigin draws the origin as S instead of its inferred pipe.
	ShowOrigin bool
}

// Styles used when Options.Color is set.
var (
	LoopStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true)
	OriginStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true)
	InteriorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB300"))
	ExteriorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3850"))
)

// Render writes one line per grid row. enclosed holds the classification
// of every tile not on l.
func Render(w io.Writer, g *grid.Grid, l *loop.Loop, enclosed map[grid.Location]bool, opts Options) error {
	origin := grid.Origin
	if !opts.ShowOrigin {
		if s, ok := g.InferOrigin(); ok {
			origin = s
		}
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Height(); r++ {
		for _, t := range g.Row(r) {
			cell, style := cellFor(t, l, enclosed, origin)
			if opts.Color {
				cell = style.Render(cell)
			}
			if _, err := bw.WriteString(cell); err != nil {
				return fmt.Errorf("failed to write row %d: %w", r, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r, err)
		}
	}
	return bw.Flush()
}

func cellFor(t grid.Tile, l *loop.Loop, enclosed map[grid.Location]bool, origin grid.Symbol) (string, lipgloss.Style) {
	if !l.Contains(t.Location) {
		if enclosed[t.Location] {
			return InteriorMark, InteriorStyle
		}
		return ExteriorMark, ExteriorStyle
	}
	if t.Symbol == grid.Origin {
		if s, ok := boxDrawing[origin]; ok {
			return s, OriginStyle
		}
		return origin.String(), OriginStyle
	}
	return boxDrawing[t.Symbol], LoopStyle
}
