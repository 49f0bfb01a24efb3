// SPDX-License-Identifier: MIT

package hungarian

import (
	"errors"

	"github.com/katalvlaran/subtour/matrix"
)

var (
	// ErrNonSquare is returned when the cost matrix is not n×n with n ≥ 1.
	ErrNonSquare = errors.New("hungarian: cost matrix must be square and non-empty")

	// ErrInvalidCost is returned for NaN, ±Inf, or negative cost entries.
	ErrInvalidCost = errors.New("hungarian: cost entries must be finite and non-negative")

	// ErrNoAssignment signals that the solved matrix carried no assigned cell
	// in any row. It is an internal invariant violation: a square matrix of
	// finite costs always admits a perfect assignment.
	ErrNoAssignment = errors.New("hungarian: no assigned cell in solved matrix")
)

// Unassigned marks a row that received no column.
const Unassigned = -1

// Cell marks written by the destructive kernel into its working copy.
const (
	markAssigned = 0.0
	markFree     = -1.0
)

// Pair is one source→target link of an assignment.
type Pair struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Assignment is a successor mapping: Assignment[i] is the column (target
// city) assigned to row i (source city), or Unassigned.
type Assignment []int

// Pairs lists the assignment as source→target pairs in source order,
// skipping unassigned rows.
func (a Assignment) Pairs() []Pair {
	out := make([]Pair, 0, len(a))

	var i int
	for i = range a {
		if a[i] == Unassigned {
			continue
		}
		out = append(out, Pair{From: i, To: a[i]})
	}

	return out
}

// Complete reports whether every row is assigned.
func (a Assignment) Complete() bool {
	var to int
	for _, to = range a {
		if to == Unassigned {
			return false
		}
	}

	return true
}

// Cost sums cost[i][a[i]] over assigned rows.
// Returns matrix.ErrOutOfRange (wrapped) if a target lies outside cost.
//
// Complexity: O(n).
func (a Assignment) Cost(cost matrix.Matrix) (float64, error) {
	var (
		sum float64
		w   float64
		err error
		p   Pair
	)
	for _, p = range a.Pairs() {
		if w, err = cost.At(p.From, p.To); err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}
