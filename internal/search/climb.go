package search

import (
	"math/rand"

	"github.com/cwbudde/tourclimb/internal/tour"
)

// Climber improves a starting route by local search
type Climber interface {
	// Climb searches from route and returns the best tour it recorded.
	// route is a working buffer: implementations may leave it mutated.
	// The returned Answer owns its Route.
	Climb(cities []tour.City, route []int, rng *rand.Rand) tour.Answer
}

// Sweep is the destructive pairwise-swap walk.
//
// For i in 1..n-2 and j in i+1..n-1 it swaps route[i] and route[j] and keeps
// the swap, then measures the mutated tour. The shortest tour met along the
// walk is recorded. Position 0 is never touched. The best starts at
// tour.NoImprovement rather than at the input route's own length, so with
// fewer than three cities nothing is measured and the sentinel is returned.
type Sweep struct{}

// Climb runs one sweep over route in place
func (Sweep) Climb(cities []tour.City, route []int, _ *rand.Rand) tour.Answer {
	n := len(route)
	best := tour.NewAnswer()
	bestRoute := make([]int, n)
	copy(bestRoute, route)

	for i := 1; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			route[i], route[j] = route[j], route[i]

			d := tour.TotalDistance(cities, route)
			if d < best.Distance {
				best.Distance = d
				copy(bestRoute, route)
			}
		}
	}

	best.Route = bestRoute
	return best
}

// Swap is the reverting pairwise-swap hill climb.
//
// Each swap is kept only when it strictly shortens the tour and undone
// otherwise; passes repeat until one makes no improvement. Unlike Sweep the
// result is always a local optimum reachable from the input by improving swaps.
type Swap struct {
	// MaxPasses bounds the number of passes; 0 means until no improvement
	MaxPasses int
}

// Climb runs reverting swap passes over route in place
func (s Swap) Climb(cities []tour.City, route []int, _ *rand.Rand) tour.Answer {
	n := len(route)
	current := tour.TotalDistance(cities, route)

	for pass := 0; s.MaxPasses == 0 || pass < s.MaxPasses; pass++ {
		improved := false
		for i := 1; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				route[i], route[j] = route[j], route[i]

				d := tour.TotalDistance(cities, route)
				if d < current {
					current = d
					improved = true
					continue
				}
				route[i], route[j] = route[j], route[i]
			}
		}
		if !improved {
			break
		}
	}

	return tour.Answer{
		Route:    append([]int(nil), route...),
		Distance: current,
	}
}
