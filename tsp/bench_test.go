// Package tsp_test benchmarks the controller end to end and the pieces it
// drives.
//
// Policy:
//   - Deterministic instances from city.Random with fixed seeds.
//   - Inputs are built outside the timer.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/subtour/city"
	"github.com/katalvlaran/subtour/hungarian"
	"github.com/katalvlaran/subtour/tsp"
)

const benchSeed = 20240601

func benchCities(b *testing.B, n int) []city.City {
	b.Helper()
	cities, err := city.Random(n, benchSeed, 1000, 1000)
	if err != nil {
		b.Fatal(err)
	}

	return cities
}

func benchmarkSolve(b *testing.B, n int) {
	cities := benchCities(b, n)
	c := tsp.NewController(tsp.Options{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Solve(cities); err != nil && err != tsp.ErrIterationLimit {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_N10(b *testing.B) { benchmarkSolve(b, 10) }
func BenchmarkSolve_N25(b *testing.B) { benchmarkSolve(b, 25) }
func BenchmarkSolve_N50(b *testing.B) { benchmarkSolve(b, 50) }

func BenchmarkAssignment_N50(b *testing.B) {
	cost, err := tsp.BuildCostMatrix(benchCities(b, 50))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = hungarian.Solve(cost); err != nil {
			b.Fatal(err)
		}
	}
}
