// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/hungarian"
	"github.com/katalvlaran/subtour/matrix"
	"github.com/katalvlaran/subtour/subtour"
)

const finalDescription = "Final Tour Found! (Single Hamiltonian Cycle)"

// Controller drives the assignment/subtour-elimination loop.
//
// MAIN DESCRIPTION:
//   A Controller owns the persistent cost matrix and the step history of one
//   solve at a time. Its lifecycle is Idle -> Iterating -> Converged or
//   Exhausted; Reset or the next Solve returns it to Idle.
//
// Implementation:
//   - Stage 1: build (Solve) or copy (SolveMatrix) the cost matrix.
//   - Stage 2: per iteration, solve the assignment, detect its subtours and
//     record a Step.
//   - Stage 3: stop on a single Hamiltonian cycle; otherwise forbid the
//     internal edges of every subtour in the persistent matrix and repeat,
//     up to the iteration limit.
//
// Behavior highlights:
//   - The persistent matrix only ever has entries raised to Forbidden.
//   - History and Result.Steps are deep copies; callers may mutate them.
//   - Methods are serialized by an internal mutex.
//
// Complexity:
//   - Time O(k·n³) for k iterations, Space O(n²) plus the history.
type Controller struct {
	mu sync.Mutex

	maxIter int
	logger  *log.Logger
	hooks   Hooks

	state State
	cost  *matrix.Dense
	steps []Step
}

// NewController returns an Idle controller configured by opts.
// Zero MaxIterations selects DefaultMaxIterations; a nil Logger discards
// output and nil Hooks become NopHooks.
func NewController(opts Options) *Controller {
	c := &Controller{
		maxIter: opts.MaxIterations,
		logger:  opts.Logger,
		hooks:   opts.Hooks,
	}
	if c.maxIter <= 0 {
		c.maxIter = DefaultMaxIterations
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.hooks == nil {
		c.hooks = NopHooks{}
	}

	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// History returns a copy of the steps recorded by the last run, in order.
func (c *Controller) History() []Step {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cloneSteps(c.steps)
}

// Reset drops the history and the cost matrix and returns to Idle.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
}

func (c *Controller) resetLocked() {
	c.state = Idle
	c.cost = nil
	c.steps = nil
}

// Solve runs the heuristic over cities.
//
// Outcomes:
//   - Converged: nil error, Result.TourLength is the closed-tour length on the
//     original coordinates.
//   - Exhausted: the full history together with ErrIterationLimit.
//   - n < 2 or an unusable distance: Idle, no steps, ErrInsufficientCities or
//     ErrDistanceOverflow.
//
// Complexity: O(k·n³) for k iterations.
func (c *Controller) Solve(cities []city.City) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	cost, err := BuildCostMatrix(cities)
	if err != nil {
		return Result{State: Idle}, err
	}

	return c.run(cost, func(a hungarian.Assignment) (float64, error) {
		return TourLength(cities, a)
	})
}

// SolveMatrix runs the heuristic over a caller-supplied n×n cost matrix.
//
// Contracts:
//   - The matrix is copied; the caller's instance is never written.
//   - +Inf entries (the usual "no edge" marker, e.g. on the diagonal) are
//     read as Forbidden. Finite entries above Forbidden are kept as given.
//   - NaN and negative entries are rejected with ErrInvalidCost before any
//     iteration runs; the controller stays Idle.
//   - Tour length is summed on the input after the +Inf mapping.
//
// Complexity: O(n²) for the copy and scan, then as Solve.
func (c *Controller) SolveMatrix(cost matrix.Matrix) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetLocked()
	work, err := matrix.Copy(cost)
	if err != nil {
		return Result{State: Idle}, err
	}
	if work.Rows() != work.Cols() {
		return Result{State: Idle}, matrix.ErrNonSquare
	}
	if work.Rows() < 2 {
		return Result{State: Idle}, ErrInsufficientCities
	}
	if err = clampForbidden(work); err != nil {
		return Result{State: Idle}, err
	}
	original := work.Clone()

	return c.run(work, func(a hungarian.Assignment) (float64, error) {
		return a.Cost(original)
	})
}

// clampForbidden maps +Inf to Forbidden in place and rejects NaN and
// negative entries (including -Inf).
//
// Complexity: O(n²).
func clampForbidden(m *matrix.Dense) error {
	var (
		i, j int
		w    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			w, _ = m.At(i, j)
			switch {
			case math.IsNaN(w) || w < 0:
				return fmt.Errorf("%w: entry (%d,%d) is %g", ErrInvalidCost, i, j, w)
			case math.IsInf(w, 1):
				_ = m.Set(i, j, Forbidden)
			}
		}
	}

	return nil
}

// run is the iteration loop. cost becomes the persistent matrix.
//
// Implementation:
//   - Stage 1: hungarian.Solve on the persistent matrix. A solver error ends
//     the run as Exhausted.
//   - Stage 2: subtour.Detect, then the partition checks. Invariant
//     violations are logged at error level; broken chains also reach
//     Hooks.OnBrokenChain.
//   - Stage 3: a single cycle covering all n cities converges and is
//     measured by length; anything else is eliminated and the loop goes on.
func (c *Controller) run(cost *matrix.Dense, length func(hungarian.Assignment) (float64, error)) (Result, error) {
	var (
		n     = cost.Rows()
		start = time.Now()
		res   Result

		iter      int
		a         hungarian.Assignment
		subtours  []subtour.Subtour
		forbidden []subtour.Edge
		chainErr  error
		err       error
		step      Step
		e         subtour.Edge
	)
	c.cost = cost
	c.state = Iterating
	c.hooks.OnSolveStart(n)
	c.logger.Info("solve started", "cities", n, "max_iterations", c.maxIter)

	for iter = 0; iter < c.maxIter; iter++ {
		if a, err = hungarian.Solve(cost); err != nil {
			return c.finish(Exhausted, start, 0), fmt.Errorf("tsp: iteration %d: %w", iter, err)
		}

		if !a.Complete() {
			c.logger.Error("assignment leaves rows unassigned", "iteration", iter, "assignment", a)
		}
		subtours, chainErr = subtour.Detect(a)
		if chainErr != nil {
			c.logger.Error("broken assignment chain", "iteration", iter, "err", chainErr)
			c.hooks.OnBrokenChain(iter, chainErr)
		}
		if err = subtour.CheckPartition(subtours, n); err != nil {
			c.logger.Error("subtours do not cover the cities", "iteration", iter, "err", err)
		}

		step = Step{
			Iteration:   iter,
			Assignment:  a,
			Subtours:    subtours,
			IsFinalTour: chainErr == nil && len(subtours) == 1 && subtours[0].Len() == n,
		}
		if step.IsFinalTour {
			step.Description = finalDescription
		} else {
			step.Description = fmt.Sprintf("Iteration %d: Found %d subtours", iter, len(subtours))
			if forbidden, err = subtour.Eliminate(cost, subtours, n, Forbidden); err != nil {
				return c.finish(Exhausted, start, 0), fmt.Errorf("tsp: iteration %d: %w", iter, err)
			}
			step.Forbidden = forbidden
			for _, e = range forbidden {
				c.hooks.OnForbid(iter, e)
			}
		}
		c.steps = append(c.steps, step)
		c.hooks.OnStep(step)
		c.logger.Debug(step.Description, "iteration", iter, "subtours", len(subtours), "forbidden", len(step.Forbidden))

		if step.IsFinalTour {
			var tl float64
			if tl, err = length(a); err != nil {
				return c.finish(Exhausted, start, 0), err
			}
			res = c.finish(Converged, start, tl)
			c.logger.Info("tour found", "iterations", len(c.steps), "length", tl, "elapsed", res.Elapsed)

			return res, nil
		}
	}

	res = c.finish(Exhausted, start, 0)
	c.logger.Warn("iteration limit reached", "iterations", len(c.steps), "elapsed", res.Elapsed)

	return res, ErrIterationLimit
}

// finish records the terminal state, fires OnSolveComplete and builds the
// Result over a copy of the history.
func (c *Controller) finish(state State, start time.Time, tourLength float64) Result {
	c.state = state
	res := Result{
		State:      state,
		Steps:      cloneSteps(c.steps),
		TourLength: tourLength,
		Elapsed:    time.Since(start),
	}
	c.hooks.OnSolveComplete(state, len(res.Steps), tourLength, res.Elapsed)

	return res
}

// cloneSteps deep-copies a history so callers can never write into the
// controller's record.
//
// Complexity: O(total size of the steps).
func cloneSteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))

	var i, j int
	for i = range steps {
		out[i] = steps[i]
		out[i].Assignment = append(hungarian.Assignment(nil), steps[i].Assignment...)
		out[i].Forbidden = append([]subtour.Edge(nil), steps[i].Forbidden...)
		out[i].Subtours = make([]subtour.Subtour, len(steps[i].Subtours))
		for j = range steps[i].Subtours {
			out[i].Subtours[j] = append(subtour.Subtour(nil), steps[i].Subtours[j]...)
		}
	}

	return out
}
