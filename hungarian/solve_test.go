package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subtour/hungarian"
	"github.com/katalvlaran/subtour/matrix"
)

// forbidden mirrors the large finite cost used by callers to rule out cells.
const forbidden = 1e18

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// bruteForce enumerates every permutation of 0..n-1 (Heap's algorithm) and
// returns the minimum total cost.
func bruteForce(c [][]float64) float64 {
	n := len(c)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := math.Inf(1)
	eval := func() {
		var s float64
		for i, j := range perm {
			s += c[i][j]
		}
		if s < best {
			best = s
		}
	}
	var heap func(k int)
	heap = func(k int) {
		if k == 1 {
			eval()
			return
		}
		for i := 0; i < k-1; i++ {
			heap(k - 1)
			if k%2 == 0 {
				perm[i], perm[k-1] = perm[k-1], perm[i]
			} else {
				perm[0], perm[k-1] = perm[k-1], perm[0]
			}
		}
		heap(k - 1)
	}
	heap(n)

	return best
}

func assertPermutation(t *testing.T, a hungarian.Assignment) {
	t.Helper()
	seen := make([]bool, len(a))
	for i, j := range a {
		require.NotEqual(t, hungarian.Unassigned, j, "row %d unassigned", i)
		require.False(t, seen[j], "column %d used twice", j)
		seen[j] = true
	}
}

func TestSolve_TwoByTwo(t *testing.T) {
	a, err := hungarian.Solve(dense(t, [][]float64{{forbidden, 10}, {10, forbidden}}))
	require.NoError(t, err)
	assert.Equal(t, hungarian.Assignment{1, 0}, a)
}

func TestSolve_KnownOptimum(t *testing.T) {
	c := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	a, err := hungarian.Solve(dense(t, c))
	require.NoError(t, err)
	assertPermutation(t, a)
	assert.Equal(t, hungarian.Assignment{1, 0, 2}, a)

	total, err := a.Cost(dense(t, c))
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
}

// TestSolve_UnitSquareTieBreak pins the deterministic tie-break on the
// unit-square distance matrix: the two horizontal pairs win over the
// equal-cost 4-cycles.
func TestSolve_UnitSquareTieBreak(t *testing.T) {
	s := math.Sqrt2
	c := [][]float64{
		{forbidden, 1, s, 1},
		{1, forbidden, 1, s},
		{s, 1, forbidden, 1},
		{1, s, 1, forbidden},
	}
	a, err := hungarian.Solve(dense(t, c))
	require.NoError(t, err)
	assert.Equal(t, hungarian.Assignment{1, 0, 3, 2}, a)
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		n := 1 + trial%7
		c := make([][]float64, n)
		for i := range c {
			c[i] = make([]float64, n)
			for j := range c[i] {
				c[i][j] = math.Round(r.Float64()*100) / 4
				if i == j && n > 1 && trial%2 == 0 {
					c[i][j] = forbidden
				}
			}
		}
		a, err := hungarian.Solve(dense(t, c))
		require.NoError(t, err)
		assertPermutation(t, a)

		got, err := a.Cost(dense(t, c))
		require.NoError(t, err)
		assert.InDelta(t, bruteForce(c), got, 1e-6, "trial %d (n=%d)", trial, n)
	}
}

func TestSolve_DoesNotMutateInput(t *testing.T) {
	rows := [][]float64{{forbidden, 3, 7}, {3, forbidden, 2}, {7, 2, forbidden}}
	m := dense(t, rows)
	before := m.ToRows()

	_, err := hungarian.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, before, m.ToRows())
}

func TestSolve_Errors(t *testing.T) {
	_, err := hungarian.Solve(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = hungarian.Solve(dense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, hungarian.ErrNonSquare)

	_, err = hungarian.Solve(dense(t, [][]float64{{1, math.NaN()}, {1, 1}}))
	assert.ErrorIs(t, err, hungarian.ErrInvalidCost)

	_, err = hungarian.Solve(dense(t, [][]float64{{1, math.Inf(1)}, {1, 1}}))
	assert.ErrorIs(t, err, hungarian.ErrInvalidCost)

	_, err = hungarian.Solve(dense(t, [][]float64{{1, -2}, {1, 1}}))
	assert.ErrorIs(t, err, hungarian.ErrInvalidCost)
}

// TestMinimizeInPlace_OverwritesWithMarks checks the destructive contract of
// the kernel that Solve hides behind its private copy.
func TestMinimizeInPlace_OverwritesWithMarks(t *testing.T) {
	work := [][]float64{{5, 1}, {1, 5}}
	hungarian.MinimizeInPlace(work)

	assert.Equal(t, [][]float64{
		{hungarian.MarkFree, hungarian.MarkAssigned},
		{hungarian.MarkAssigned, hungarian.MarkFree},
	}, work)
}

func TestExtractMarked(t *testing.T) {
	a, err := hungarian.ExtractMarked([][]float64{
		{hungarian.MarkFree, hungarian.MarkAssigned, hungarian.MarkAssigned},
		{hungarian.MarkFree, hungarian.MarkFree, hungarian.MarkFree},
		{hungarian.MarkAssigned, hungarian.MarkFree, hungarian.MarkFree},
	})
	require.NoError(t, err)
	// First mark per row wins; a row without marks stays unassigned.
	assert.Equal(t, hungarian.Assignment{1, hungarian.Unassigned, 0}, a)
	assert.False(t, a.Complete())
	assert.Equal(t, []hungarian.Pair{{From: 0, To: 1}, {From: 2, To: 0}}, a.Pairs())

	_, err = hungarian.ExtractMarked([][]float64{{hungarian.MarkFree}})
	assert.ErrorIs(t, err, hungarian.ErrNoAssignment)
}
