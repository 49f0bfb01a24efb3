// SPDX-License-Identifier: MIT

package hungarian

import (
	"math"

	"github.com/katalvlaran/subtour/matrix"
)

// Solve returns a minimum-cost perfect assignment for the square matrix cost.
//
// MAIN DESCRIPTION:
//   Rows are sources and columns are targets. The returned Assignment maps
//   every row to exactly one column and uses every column once, minimizing
//   the summed cost of the chosen cells.
//
// Implementation:
//   - Stage 1 (copy-in): validate shape and entries, then copy cost into a
//     private row-major [][]float64. cost is never read again.
//   - Stage 2 (minimize): for each row, grow a shortest augmenting path over
//     reduced costs using row/column potentials (Jonker–Volgenant form),
//     then flip the path. The working copy is consumed destructively.
//   - Stage 3 (extract): turn the column→row matching into a row→column
//     Assignment and verify it is a permutation.
//
// Inputs:
//   - cost: n×n, n ≥ 1, every entry finite and non-negative.
//
// Returns:
//   - Assignment of len n; in a well-formed solve every entry is assigned.
//   - matrix.ErrNilMatrix, ErrNonSquare, ErrInvalidCost or ErrNoAssignment.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy plus O(n) for potentials.
func Solve(cost matrix.Matrix) (Assignment, error) {
	work, err := copyIn(cost)
	if err != nil {
		return nil, err
	}
	minimize(work)

	return extract(work)
}

// copyIn validates cost and returns a private row-major working copy.
// Complexity: O(n²).
func copyIn(cost matrix.Matrix) ([][]float64, error) {
	if cost == nil {
		return nil, matrix.ErrNilMatrix
	}
	n := cost.Rows()
	if n <= 0 || cost.Cols() != n {
		return nil, ErrNonSquare
	}

	var (
		work = make([][]float64, n)
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		work[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if w, err = cost.At(i, j); err != nil {
				return nil, err
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, ErrInvalidCost
			}
			work[i][j] = w
		}
	}

	return work, nil
}

// minimize is the destructive kernel. It solves the assignment over c with
// row/column potentials and shortest augmenting paths, then OVERWRITES c:
// every assigned cell becomes markAssigned and every other cell markFree.
//
// Arrays are 1-indexed; column 0 is the virtual column that roots each
// augmenting search. p[j] is the row (1-based) matched to column j.
//
// Complexity: O(n³) time, O(n) extra space.
func minimize(c [][]float64) {
	n := len(c)
	var (
		u    = make([]float64, n+1) // row potentials
		v    = make([]float64, n+1) // column potentials
		p    = make([]int, n+1)
		way  = make([]int, n+1) // previous column on the augmenting path
		minv = make([]float64, n+1)
		used = make([]bool, n+1)
		inf  = math.Inf(1)

		i, j, i0, j0, j1 int
		cur, delta       float64
	)

	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 = p[j0]
			delta = inf
			j1 = -1

			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = c[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			// Finite costs always leave a reachable free column; bail out
			// rather than augment along a broken path.
			if j1 < 0 {
				break
			}

			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		if j1 < 0 {
			continue
		}

		// Augment along the path.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	// Overwrite the working copy with marks.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c[i][j] = markFree
		}
	}
	for j = 1; j <= n; j++ {
		if p[j] > 0 {
			c[p[j]-1][j-1] = markAssigned
		}
	}
}

// extract reads a marked matrix: the first markAssigned cell of each row is
// that row's target. Rows without one stay Unassigned. If no row carries a
// mark the solve is reported as ErrNoAssignment.
//
// Complexity: O(n²).
func extract(marked [][]float64) (Assignment, error) {
	var (
		n     = len(marked)
		out   = make(Assignment, n)
		found bool
		i, j  int
	)
	for i = 0; i < n; i++ {
		out[i] = Unassigned
		for j = 0; j < n; j++ {
			if marked[i][j] == markAssigned {
				out[i] = j
				found = true
				break
			}
		}
	}
	if !found {
		return nil, ErrNoAssignment
	}

	return out, nil
}
