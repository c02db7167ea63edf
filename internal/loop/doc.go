// Package loop traces the closed pipe loop through the origin tile and
// derives the geometry needed to reason about it.
//
// A trace produces the ordered sequence of loop locations starting at the
// origin. Everything else is computed from that sequence:
//   - Tangents: the in/out headings at every loop tile
//   - Distances: loop-edge distance of every tile from the origin
//   - Orientation: whether the trace winds clockwise, by signed area
//
// The origin's own shape is never resolved; the trace relies on
// grid.Connects to discover which two neighbours join it.
package loop
