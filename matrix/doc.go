// SPDX-License-Identifier: MIT

// Package matrix provides the square cost-matrix storage used by the
// assignment heuristic.
//
// The package offers:
//
//   - Matrix: a minimal mutable interface (Rows, Cols, At, Set, Clone) so that
//     solvers can be written against any backing store.
//   - Dense: a row-major implementation backed by one flat slice.
//   - FromRows / ToRows helpers to move between Dense and [][]float64, and
//     Copy to turn any Matrix into a Dense.
//
// Cost matrices are small (one row and one column per city) and are cloned
// once per solve, so Dense keeps Clone a single copy of its backing slice.
//
// All public indexers return sentinel errors (see errors.go); nothing panics on
// caller input.
package matrix
