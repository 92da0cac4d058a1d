// Package search finds short closed tours with seeded multi-start local search.
//
// Every random draw goes through an explicitly passed *rand.Rand, so a fixed
// seed reproduces a run exactly. A *rand.Rand is not safe for concurrent use;
// searches here are single-threaded and own their source for the whole call.
package search

import (
	"math/rand"
	"time"
)

// NewRand returns a random source seeded with seed.
// A zero seed draws one from the clock, matching a fresh process start.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomRoute returns a permutation of 0..n-1 starting at city 0
func RandomRoute(n int, rng *rand.Rand) []int {
	if n < 1 {
		return nil
	}
	route := make([]int, n)
	fillRandomRoute(route, rng)
	return route
}

// fillRandomRoute overwrites route with a fresh permutation starting at city 0.
// Positions 1..n-1 are drawn by rejection: a candidate already placed is redrawn.
func fillRandomRoute(route []int, rng *rand.Rand) {
	n := len(route)
	if n == 0 {
		return
	}

	route[0] = 0
	for count := 1; count < n; count++ {
		candidate := rng.Intn(n)
		for placed(route[:count], candidate) {
			candidate = rng.Intn(n)
		}
		route[count] = candidate
	}
}

func placed(prefix []int, c int) bool {
	for _, v := range prefix {
		if v == c {
			return true
		}
	}
	return false
}
