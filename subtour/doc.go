// SPDX-License-Identifier: MIT

// Package subtour decomposes an assignment (a successor function over cities)
// into its directed cycles, and patches a persistent cost matrix so the next
// assignment solve cannot repeat them.
//
// Detect walks successor links from every unvisited city in ascending index
// order. In a well-formed assignment the cycles partition {0..n-1}; a walk
// that runs off a missing or out-of-range successor, or into a city claimed
// by an earlier cycle, is reported as a *ChainError (ErrBrokenChain) and the
// remaining cities are still processed.
//
// Eliminate forbids exactly one edge per subtour shorter than the full tour:
// the link from its first city to its second (cyclically, so a single-city
// subtour names its own self-loop). Forbidding only ever raises a cost.
package subtour
