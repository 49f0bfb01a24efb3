// SPDX-License-Identifier: MIT

// Package tsp drives the assignment-and-subtour-patching heuristic for the
// Travelling Salesman Problem and records every iteration for playback.
//
// Pipeline (one Controller run):
//
//  1. BuildCostMatrix: symmetric Euclidean costs from the ORIGINAL city
//     coordinates; the diagonal holds Forbidden so no city is its own
//     successor.
//  2. Loop, at most Options.MaxIterations times (default 100):
//     a. hungarian.Solve on a private copy of the persistent cost matrix.
//     b. subtour.Detect on the resulting successor function.
//     c. Record an immutable Step (assignment, subtours, iteration, text,
//     IsFinalTour = exactly one subtour spanning all n cities).
//     d. Final step ⇒ Converged, stop. Otherwise subtour.Eliminate raises
//     one edge per subtour to Forbidden in the persistent matrix.
//  3. Cap reached without a final step ⇒ Exhausted; the history is returned
//     together with ErrIterationLimit.
//
// State machine: Idle → Iterating → {Converged | Exhausted}. Every Solve
// starts from Idle with a fresh matrix and an empty history.
//
// The heuristic forbids exactly one edge per offending subtour (first city to
// second) and never revisits that choice; it does not improve tour quality
// beyond that.
//
// Concurrency: a Controller serializes Solve, Reset and the readers behind
// one mutex. Hooks run on the solving goroutine while that mutex is held and
// must not call back into the Controller.
//
// Complexity: O(n³) per iteration (assignment), O(n²) for the matrix copy,
// O(n) for detection and elimination.
package tsp
