// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/matrix"
)

// BuildCostMatrix returns the n×n cost matrix for cities: Euclidean distance
// off the diagonal (symmetric) and Forbidden on the diagonal.
//
// Errors:
//   - ErrInsufficientCities if n < 2.
//   - ErrDistanceOverflow (wrapped with the pair) if a distance is not finite
//     or not strictly below Forbidden.
//
// Complexity: O(n²).
func BuildCostMatrix(cities []city.City) (*matrix.Dense, error) {
	n := len(cities)
	if n < 2 {
		return nil, ErrInsufficientCities
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		_ = m.Set(i, i, Forbidden)
		for j = i + 1; j < n; j++ {
			d = city.Distance(cities[i], cities[j])
			if math.IsNaN(d) || math.IsInf(d, 0) || d >= Forbidden {
				return nil, fmt.Errorf("%w: cities %d and %d", ErrDistanceOverflow, i, j)
			}
			_ = m.Set(i, j, d)
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}
