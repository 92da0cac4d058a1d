package search

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/cwbudde/tourclimb/internal/opt"
	"github.com/cwbudde/tourclimb/internal/tour"
)

// RandomKey searches tours through a continuous optimizer.
//
// Positions 1..n-1 each get a key in [0, 1]; sorting the cities by key gives
// the visiting order after city 0. The starting route only fixes n; each
// Climb draws one seed from rng for a fresh optimizer run.
type RandomKey struct {
	NewOptimizer opt.Factory
}

// Climb runs one optimizer pass and decodes its best key vector
func (rk RandomKey) Climb(cities []tour.City, route []int, rng *rand.Rand) tour.Answer {
	n := len(route)
	if n < 2 {
		return tour.Answer{Route: append([]int(nil), route...), Distance: tour.NoImprovement}
	}

	dim := n - 1
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := range upper {
		upper[i] = 1
	}

	// Decoding reuses one buffer; the objective is only called synchronously.
	work := make([]int, n)
	eval := func(keys []float64) float64 {
		decodeKeys(keys, work)
		return tour.TotalDistance(cities, work)
	}

	seed := rng.Int63()
	keys, cost := rk.NewOptimizer(seed).Run(eval, lower, upper, dim)

	decodeKeys(keys, route)
	slog.Debug("Random-key run complete", "seed", seed, "distance", cost)

	return tour.Answer{
		Route:    append([]int(nil), route...),
		Distance: tour.TotalDistance(cities, route),
	}
}

// decodeKeys writes the route encoded by keys into route.
// route[0] is city 0; cities 1..n-1 follow in ascending key order, ties by index.
func decodeKeys(keys []float64, route []int) {
	route[0] = 0
	for i := 1; i < len(route); i++ {
		route[i] = i
	}
	rest := route[1:]
	sort.SliceStable(rest, func(a, b int) bool {
		return keys[rest[a]-1] < keys[rest[b]-1]
	})
}
