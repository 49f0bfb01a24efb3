// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/subtour/hungarian"
	"github.com/katalvlaran/subtour/subtour"
)

var (
	// ErrInsufficientCities is returned when fewer than 2 cities are supplied.
	// No step is produced and the controller stays Idle.
	ErrInsufficientCities = errors.New("tsp: at least 2 cities are required")

	// ErrIterationLimit is a warning: the iteration cap was reached without a
	// single-cycle assignment. It is returned together with a complete Result.
	ErrIterationLimit = errors.New("tsp: iteration limit reached without a full tour")

	// ErrDistanceOverflow is returned when an inter-city distance is not
	// strictly below Forbidden (or is not finite).
	ErrDistanceOverflow = errors.New("tsp: distance does not fit below the forbidden cost")

	// ErrInvalidCost is returned by SolveMatrix for NaN or negative entries.
	ErrInvalidCost = errors.New("tsp: cost entries must be non-negative numbers")

	// ErrDimensionMismatch is returned when an assignment and a city list
	// disagree in size or reference indices out of range.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNotFinal is returned by Step.Tour for a step that is not a full tour.
	ErrNotFinal = errors.New("tsp: step is not a final tour")
)

const (
	// DefaultMaxIterations bounds the solve loop when Options leave it unset.
	DefaultMaxIterations = 100

	// Forbidden is the "effectively infinite" cost: strictly larger than any
	// accepted inter-city distance, finite so that potentials stay finite.
	Forbidden = 1e18
)

// State is the controller lifecycle.
type State int

const (
	// Idle: no solve has run since construction or Reset, or the last
	// request was rejected.
	Idle State = iota
	// Iterating: a solve is in flight.
	Iterating
	// Converged: the last step is a single Hamiltonian cycle.
	Converged
	// Exhausted: the iteration cap was reached without convergence.
	Exhausted
)

var stateNames = [...]string{"idle", "iterating", "converged", "exhausted"}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}

	return stateNames[s]
}

// MarshalText encodes the state by name (used by JSON and YAML exports).
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Options configures a Controller.
type Options struct {
	// MaxIterations caps the loop; values ≤ 0 select DefaultMaxIterations.
	MaxIterations int

	// Logger receives per-iteration diagnostics; nil discards them.
	Logger *log.Logger

	// Hooks observes the run; nil selects NopHooks.
	Hooks Hooks
}

// Step is an immutable snapshot of one iteration.
type Step struct {
	Iteration   int                  `json:"iteration" yaml:"iteration"`
	Assignment  hungarian.Assignment `json:"assignment" yaml:"assignment"`
	Subtours    []subtour.Subtour    `json:"subtours" yaml:"subtours"`
	Forbidden   []subtour.Edge       `json:"forbidden,omitempty" yaml:"forbidden,omitempty"`
	Description string               `json:"description" yaml:"description"`
	IsFinalTour bool                 `json:"is_final_tour" yaml:"is_final_tour"`
}

// Pairs returns the step's assignment as source→target pairs.
func (s Step) Pairs() []hungarian.Pair { return s.Assignment.Pairs() }

// Result is the outcome of one Controller run.
type Result struct {
	State State  `json:"state" yaml:"state"`
	Steps []Step `json:"steps" yaml:"steps"`

	// TourLength is the length of the final tour; valid iff State == Converged.
	TourLength float64 `json:"tour_length" yaml:"tour_length"`

	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Final returns the converged step, if any.
func (r Result) Final() (Step, bool) {
	if r.State != Converged || len(r.Steps) == 0 {
		return Step{}, false
	}

	return r.Steps[len(r.Steps)-1], true
}
