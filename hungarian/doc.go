// SPDX-License-Identifier: MIT

// Package hungarian solves the square minimum-cost perfect assignment problem
// (Kuhn–Munkres, potentials formulation) over a cost matrix.
//
// Each row i is a source and each column j a target; the result maps every
// row to exactly one column and uses every column exactly once. Read as a
// successor function, the result assigns every city exactly one successor.
//
// Copy-in / copy-out:
//
//	The solving kernel is destructive: it overwrites its working rows with
//	assignment marks (0 for an assigned cell, -1 otherwise). Solve therefore
//	reads the caller's matrix once into a private working copy, runs the
//	kernel on that copy, and extracts the assignment from the marks. The
//	caller's matrix is never written.
//
// Ties are broken deterministically: columns are scanned in ascending order
// and only a strictly smaller reduced cost replaces the current candidate.
//
// Complexity: O(n³) time, O(n²) space for the working copy.
package hungarian
