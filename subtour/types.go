// SPDX-License-Identifier: MIT

package subtour

import (
	"errors"
	"fmt"
)

var (
	// ErrBrokenChain marks a successor walk that did not close into a cycle.
	ErrBrokenChain = errors.New("subtour: broken assignment chain")

	// ErrNotPartition is returned by CheckPartition when subtours do not cover
	// {0..n-1} exactly once.
	ErrNotPartition = errors.New("subtour: cycles do not partition the cities")
)

// Edge is a directed link From→To between two city indices.
type Edge struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// String renders the edge as "from->to".
func (e Edge) String() string { return fmt.Sprintf("%d->%d", e.From, e.To) }

// Subtour is an ordered cycle of city indices; the link from the last city
// back to the first is implicit.
type Subtour []int

// Len returns the number of cities on the cycle.
func (s Subtour) Len() int { return len(s) }

// Edges lists the cycle's links in walk order, including the closing link.
// A single-city subtour yields its self-loop.
func (s Subtour) Edges() []Edge {
	out := make([]Edge, len(s))

	var i int
	for i = range s {
		out[i] = Edge{From: s[i], To: s[(i+1)%len(s)]}
	}

	return out
}

// ChainError describes one broken walk. Start is the city the walk began at,
// At the last city placed on it, and Next the offending successor of At
// (out of range, or already claimed by another cycle).
type ChainError struct {
	Start int
	At    int
	Next  int
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%v: walk from %d stopped at %d (successor %d)", ErrBrokenChain, e.Start, e.At, e.Next)
}

// Unwrap lets errors.Is(err, ErrBrokenChain) match.
func (e *ChainError) Unwrap() error { return ErrBrokenChain }
