// Package subtour is the root of a small solver for the Travelling Salesman
// Problem that works by assignment and subtour patching, with tooling to
// replay each iteration.
//
// The heuristic, in one paragraph: solve a minimum-cost perfect assignment
// over the city distance matrix (every city picks exactly one successor),
// split the resulting successor function into cycles, and if there is more
// than one cycle forbid one edge of each and solve again. The first
// assignment that forms a single cycle through every city is the tour. It is
// a heuristic: the forbidden edges are never revisited, so the tour is not
// guaranteed optimal and the loop is capped (100 iterations by default).
//
// Packages:
//
//	matrix/             Matrix interface and row-major Dense storage
//	city/               City model, JSON/YAML loading, display normalization, random instances
//	hungarian/          minimum-cost perfect assignment (potentials + shortest augmenting paths)
//	subtour/            cycle detection over a successor function and edge elimination
//	tsp/                cost-matrix builder, iteration Controller, Step history, hooks
//	internal/config/    TOML configuration
//	internal/metrics/   Prometheus hooks and text-file export
//	internal/render/    step panel, PNG and SVG frames
//	internal/cli/       cobra commands: solve, play, render, generate
//	cmd/subtour/        binary entry point
//
// Quick example (unit square):
//
//	(0,1) D───C (1,1)
//	      │   │
//	(0,0) A───B (1,0)
//
//	iteration 0: assignment pairs A↔B and C↔D → two 2-cycles; forbid A→B, C→D
//	iteration 1: A→D→C→B→A, one cycle of length 4 → converged
//
//	go install github.com/katalvlaran/subtour/cmd/subtour@latest
package subtour
