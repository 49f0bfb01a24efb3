// Package city - deterministic random instances.
//
// Determinism: same (n, seed, width, height) ⇒ identical cities on every
// platform. No time-based sources are used anywhere; seed==0 selects a fixed
// default seed so "unset" still means reproducible.
//
// Concurrency: each call owns its *rand.Rand; nothing is shared.
package city

import (
	"fmt"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer). Used to give every generated instance of a batch its
// own independent stream.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Random returns n cities uniformly distributed over [0,width)×[0,height).
// Cities are named "c0", "c1", ... in index order.
//
// Errors: ErrCount when n<0; ErrFormat when width or height is not positive.
//
// Complexity: O(n).
func Random(n int, seed int64, width, height float64) ([]City, error) {
	if n < 0 {
		return nil, ErrCount
	}
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("%w: extent %gx%g", ErrFormat, width, height)
	}
	var (
		r   = rngFromSeed(seed)
		out = make([]City, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = City{
			X:    r.Float64() * width,
			Y:    r.Float64() * height,
			Name: fmt.Sprintf("c%d", i),
		}
	}

	return out, nil
}

// RandomBatch returns count independent instances of n cities each. Instance k
// is generated from deriveSeed(seed, k), so growing count never changes the
// earlier instances.
func RandomBatch(count, n int, seed int64, width, height float64) ([][]City, error) {
	if count < 0 {
		return nil, ErrCount
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}
	out := make([][]City, count)

	var (
		k   int
		err error
	)
	for k = 0; k < count; k++ {
		if out[k], err = Random(n, deriveSeed(seed, uint64(k)), width, height); err != nil {
			return nil, err
		}
	}

	return out, nil
}
