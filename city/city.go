package city

import (
	"errors"
	"math"
)

var (
	// ErrEmpty is returned when a city file contains no records.
	ErrEmpty = errors.New("city: no cities in input")

	// ErrFormat is returned for unknown formats or malformed records.
	ErrFormat = errors.New("city: unsupported or malformed input")

	// ErrCount is returned when a negative number of cities is requested.
	ErrCount = errors.New("city: count must be non-negative")
)

// City is one point in the plane. Its index is implicit: the position in the
// slice handed to the solver.
type City struct {
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	Name string  `json:"name,omitempty" yaml:"name,omitempty"`
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b City) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Label returns c.Name, or fallback when the city is unnamed.
func (c City) Label(fallback string) string {
	if c.Name == "" {
		return fallback
	}

	return c.Name
}
