// SPDX-License-Identifier: MIT

package tsp

import (
	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/hungarian"
)

// TourLength sums the Euclidean lengths of every assigned link i→a[i],
// measured on the ORIGINAL coordinates (never on the patched cost matrix).
//
// Contract:
//   - len(a) == len(cities); every a[i] is Unassigned or in [0, n).
//
// For a final assignment the value is the length of the closed tour.
//
// Complexity: O(n).
func TourLength(cities []city.City, a hungarian.Assignment) (float64, error) {
	if len(a) != len(cities) {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		i, j int
	)
	for i, j = range a {
		if j == hungarian.Unassigned {
			continue
		}
		if j < 0 || j >= len(cities) {
			return 0, ErrDimensionMismatch
		}
		sum += city.Distance(cities[i], cities[j])
	}

	return sum, nil
}

// Tour returns the step's final assignment as a closed visiting order
// starting at city 0: len n+1 with tour[0] == tour[n] == 0.
// Returns ErrNotFinal for intermediate steps.
//
// Complexity: O(n).
func (s Step) Tour() ([]int, error) {
	if !s.IsFinalTour {
		return nil, ErrNotFinal
	}

	var (
		n    = len(s.Assignment)
		tour = make([]int, 0, n+1)
		cur  int
		i    int
	)
	for i = 0; i < n; i++ {
		tour = append(tour, cur)
		cur = s.Assignment[cur]
		if cur < 0 || cur >= n {
			return nil, ErrDimensionMismatch
		}
	}
	tour = append(tour, cur)
	if err := validateTour(tour, n); err != nil {
		return nil, err
	}

	return tour, nil
}

// validateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == 0,
//	each city appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func validateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 || tour[0] != 0 || tour[n] != 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var v int
	for _, v = range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}
