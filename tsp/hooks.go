// SPDX-License-Identifier: MIT

package tsp

import (
	"time"

	"github.com/katalvlaran/subtour/subtour"
)

// Hooks observes a Controller run. Callbacks fire synchronously on the
// solving goroutine in this order: OnSolveStart, then per iteration
// OnBrokenChain (if any), OnForbid for each forbidden edge, OnStep; finally
// OnSolveComplete.
type Hooks interface {
	OnSolveStart(n int)
	OnStep(step Step)
	OnForbid(iteration int, e subtour.Edge)
	OnBrokenChain(iteration int, err error)
	OnSolveComplete(state State, steps int, tourLength float64, elapsed time.Duration)
}

// NopHooks ignores every event. Embed it to implement a subset of Hooks.
type NopHooks struct{}

var _ Hooks = NopHooks{}

func (NopHooks) OnSolveStart(int) {}
func (NopHooks) OnStep(Step) {}
func (NopHooks) OnForbid(int, subtour.Edge) {}
func (NopHooks) OnBrokenChain(int, error) {}
func (NopHooks) OnSolveComplete(State, int, float64, time.Duration) {}
