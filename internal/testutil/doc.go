// Package testutil provides shared test fixtures and helpers for pipemaze.
//
// # Fixtures
//
// The fixtures.go file provides sample grids with known answers:
//
//   - SquareLoop, TangledLoop - small loops for furthest-distance checks
//   - PerimeterLoop - a 5x5 grid whose outer ring is the loop
//   - Corridor, SqueezedCorridor - loops with a one-tile-wide gap
//   - ScatteredGround, JunkPipes - larger grids with stray pipes
//   - Samples() - every fixture with its expected answers
//
// # Helpers
//
//   - MustParse(t, text) - parses a grid or fails the test
//   - WriteGridFile(t, dir, name, text) - writes a grid file for CLI tests
//   - WriteConfigFile(t, dir, content) - writes .pipemaze/config.yaml
//   - AssertPartition(t, g, onLoop, enclosed) - every tile is on the loop,
//     interior, or exterior, exactly once
package testutil
