// Package render turns solver steps into pictures and text.
//
//   - Lines / Panel: the per-step text panel (iteration, subtours, assignment
//     edges with distances, status), plain or lipgloss-styled.
//   - PNG: a raster frame drawn with gogpu/gg.
//   - DOT / SVG: a pinned-position Graphviz graph rendered with go-graphviz.
//
// Coordinates go through city.Normalize first; nothing here feeds back into
// the solver.
package render
