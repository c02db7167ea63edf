package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/pipemaze/internal/grid"
)

// MustParse parses text into a Grid or fails the test.
func MustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

// WriteGridFile writes text to dir/name and returns the full path.
func WriteGridFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

// WriteConfigFile writes content to dir/.pipemaze/config.yaml.
func WriteConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	cfgDir := filepath.Join(dir, ".pipemaze")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o644))
}

// AssertPartition asserts that every tile of g is either on the loop or
// classified in enclosed, and never both.
func AssertPartition(t *testing.T, g *grid.Grid, onLoop func(grid.Location) bool, enclosed map[grid.Location]bool) {
	t.Helper()

	loopTiles := 0
	for r := 0; r < g.Height(); r++ {
		for _, tile := range g.Row(r) {
			_, classified := enclosed[tile.Location]
			if onLoop(tile.Location) {
				loopTiles++
				assert.False(t, classified, "loop tile %v was classified", tile.Location)
			} else {
				assert.True(t, classified, "tile %v was not classified", tile.Location)
			}
		}
	}
	assert.Equal(t, g.Width()*g.Height(), loopTiles+len(enclosed), "tile count mismatch")
}
