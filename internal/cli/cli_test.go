package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/pipemaze/internal/config"
	"github.com/thruflo/pipemaze/internal/logging"
	"github.com/thruflo/pipemaze/internal/solver"
	"github.com/thruflo/pipemaze/internal/testutil"
)

// resetFlags restores every package-level flag to its default and points
// the config dir at dir.
func resetFlags(t *testing.T, dir string) {
	t.Helper()
	verbose = false
	configDir = dir
	initForce = false
	solveJSON = false
	solveWorkers = 0
	renderColor = false
	renderShowOrigin = false
	t.Cleanup(func() {
		configDir = ""
		logging.SetLevel(logging.LevelWarn)
	})
}

func run(t *testing.T, cmd *cobra.Command, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	err := fn(cmd, args)
	return buf.String(), err
}

func TestSolveCommand(t *testing.T) {
	tmpDir := t.TempDir()
	resetFlags(t, tmpDir)

	for _, s := range testutil.Samples() {
		t.Run(s.Name, func(t *testing.T) {
			path := testutil.WriteGridFile(t, tmpDir, "grid.txt", s.Grid)

			out, err := run(t, solveCmd, runSolve, path)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("Part 1: %d\nPart 2: %d\n", s.Furthest, s.Enclosed), out)
		})
	}
}

func TestSolveCommandJSON(t *testing.T) {
	tmpDir := t.TempDir()
	resetFlags(t, tmpDir)
	solveJSON = true
	solveWorkers = 3

	path := testutil.WriteGridFile(t, tmpDir, "grid.txt", testutil.JunkPipes)
	out, err := run(t, solveCmd, runSolve, path)
	require.NoError(t, err)

	var got solver.Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, solver.Result{Furthest: 80, Enclosed: 10, LoopLength: 160, Winding: "clockwise"}, got)
}

func TestSolveCommandErrors(t *testing.T) {
	tmpDir := t.TempDir()
	resetFlags(t, tmpDir)

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, solveCmd, runSolve, filepath.Join(tmpDir, "nope.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read grid file")
	})

	t.Run("broken loop", func(t *testing.T) {
		path := testutil.WriteGridFile(t, tmpDir, "broken.txt", "S-7\n|.|\nL-.\n")
		_, err := run(t, solveCmd, runSolve, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken loop")
	})

	t.Run("invalid config", func(t *testing.T) {
		testutil.WriteConfigFile(t, tmpDir, "classifier:\n  workers: 0\n")
		t.Cleanup(func() { os.RemoveAll(filepath.Join(tmpDir, config.Dir)) })

		path := testutil.WriteGridFile(t, tmpDir, "grid.txt", testutil.SquareLoop)
		_, err := run(t, solveCmd, runSolve, path)
		require.Error(t, err)
		assert.True(t, config.IsValidationError(err))
	})
}

func TestSolveCommandArgs(t *testing.T) {
	assert.Error(t, solveCmd.Args(solveCmd, []string{}))
	assert.Error(t, solveCmd.Args(solveCmd, []string{"a.txt", "b.txt"}))
	assert.NoError(t, solveCmd.Args(solveCmd, []string{"a.txt"}))

	flag := solveCmd.Flags().Lookup("workers")
	require.NotNil(t, flag)
	assert.Equal(t, "w", flag.Shorthand)
}

func TestRenderCommand(t *testing.T) {
	tmpDir := t.TempDir()
	resetFlags(t, tmpDir)

	path := testutil.WriteGridFile(t, tmpDir, "grid.txt", testutil.SquareLoop)

	out, err := run(t, renderCmd, runRender, path)
	require.NoError(t, err)
	assert.Equal(t, "OOOOO\nO┌─┐O\nO│I│O\nO└─┘O\nOOOOO\n", out)

	renderShowOrigin = true
	out, err = run(t, renderCmd, runRender, path)
	require.NoError(t, err)
	assert.Contains(t, out, "OS─┐O")
}

func TestRenderCommandUsesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	resetFlags(t, tmpDir)
	testutil.WriteConfigFile(t, tmpDir, "render:\n  show_origin: true\n")

	path := testutil.WriteGridFile(t, tmpDir, "grid.txt", testutil.SquareLoop)
	out, err := run(t, renderCmd, runRender, path)
	require.NoError(t, err)
	assert.Contains(t, out, "OS─┐O")
}

func TestInitCommand(t *testing.T) {
	tmpDir := t.TempDir()
	resetFlags(t, tmpDir)

	out, err := run(t, initCmd, runInit)
	require.NoError(t, err)
	assert.Contains(t, out, config.Path(tmpDir))

	cfg, err := config.LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := run(t, initCmd, runInit)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("overwrites with force", func(t *testing.T) {
		initForce = true
		_, err := run(t, initCmd, runInit)
		require.NoError(t, err)
	})
}

func TestVerboseOverridesConfiguredLevel(t *testing.T) {
	tmpDir := t.TempDir()
	resetFlags(t, tmpDir)
	testutil.WriteConfigFile(t, tmpDir, "log_level: error\n")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, logging.LevelError, cfg.Level())

	verbose = true
	_, err = loadConfig()
	require.NoError(t, err)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"init", "solve", "render"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}
