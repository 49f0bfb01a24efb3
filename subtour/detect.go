// SPDX-License-Identifier: MIT

package subtour

import "errors"

// Detect partitions {0..n-1}, n = len(next), into the cycles of the
// successor function next.
//
// MAIN DESCRIPTION:
//   An assignment read as a successor function is a disjoint union of
//   cycles. Detect walks each cycle once and returns it as a Subtour.
//
// Implementation:
//   - Stage 1: scan start = 0..n-1, skipping visited cities.
//   - Stage 2: from start, follow next[] marking cities visited until the
//     walk returns to start.
//   - Stage 3: append the walked cycle and continue the scan.
//
// Behavior highlights:
//   - Subtours come in discovery order: ascending index of the first
//     unvisited city at each outer step.
//   - A walk that leaves [0,n) or re-enters a visited city other than its
//     start keeps the cities seen so far as a partial subtour and records a
//     *ChainError. The scan then continues.
//   - All chain errors are joined into the returned error. The subtours
//     still partition {0..n-1} either way.
//
// Complexity:
//   - Time O(n), Space O(n).
func Detect(next []int) ([]Subtour, error) {
	var (
		n       = len(next)
		visited = make([]bool, n)
		out     []Subtour
		errs    []error

		start, cur, succ int
		cycle            Subtour
	)
	for start = 0; start < n; start++ {
		if visited[start] {
			continue
		}
		cycle = nil
		cur = start
		for {
			visited[cur] = true
			cycle = append(cycle, cur)
			succ = next[cur]
			if succ < 0 || succ >= n {
				errs = append(errs, &ChainError{Start: start, At: cur, Next: succ})
				break
			}
			if visited[succ] {
				if succ != start {
					errs = append(errs, &ChainError{Start: start, At: cur, Next: succ})
				}
				break
			}
			cur = succ
		}
		out = append(out, cycle)
	}

	return out, errors.Join(errs...)
}

// CheckPartition verifies that subtours cover every index in {0..n-1}
// exactly once and nothing else.
//
// Complexity: O(n).
func CheckPartition(subtours []Subtour, n int) error {
	var (
		seen  = make([]bool, n)
		count int
		s     Subtour
		v     int
	)
	for _, s = range subtours {
		if len(s) == 0 {
			return ErrNotPartition
		}
		for _, v = range s {
			if v < 0 || v >= n || seen[v] {
				return ErrNotPartition
			}
			seen[v] = true
			count++
		}
	}
	if count != n {
		return ErrNotPartition
	}

	return nil
}
