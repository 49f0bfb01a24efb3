// SPDX-License-Identifier: MIT

package subtour

import "github.com/katalvlaran/subtour/matrix"

// Eliminate forbids one edge of every subtour shorter than n by raising its
// entry in cost to forbidden. The chosen edge is always s[0]→s[1 % len(s)].
// Cells already at or above forbidden are left untouched, so the matrix is
// monotonically non-decreasing across calls.
//
// It returns the forbidden edges in subtour order. cost is mutated in place;
// pass the persistent matrix, not a solver's working copy.
//
// Complexity: O(len(subtours)).
func Eliminate(cost matrix.Matrix, subtours []Subtour, n int, forbidden float64) ([]Edge, error) {
	var (
		out []Edge
		s   Subtour
		e   Edge
		w   float64
		err error
	)
	for _, s = range subtours {
		if len(s) == 0 || len(s) >= n {
			continue
		}
		e = Edge{From: s[0], To: s[1%len(s)]}
		if w, err = cost.At(e.From, e.To); err != nil {
			return out, err
		}
		if w < forbidden {
			if err = cost.Set(e.From, e.To, forbidden); err != nil {
				return out, err
			}
		}
		out = append(out, e)
	}

	return out, nil
}
