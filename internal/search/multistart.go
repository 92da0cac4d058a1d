package search

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/cwbudde/tourclimb/internal/tour"
)

// Result holds the outcome of a multi-start solve
type Result struct {
	// Best is the shortest tour over all restarts.
	// Best.Found() is false when no restart measured a tour.
	Best tour.Answer

	// InitialDistance is the best distance after the first restart
	InitialDistance float64

	// Restarts is the number of restarts actually run
	Restarts int

	// Converged is set when the run stopped early on patience
	Converged bool

	// Strategy is the climber the run used
	Strategy string
}

// Solve repeats random route generation and local search opts.Restarts times
// and keeps the globally shortest tour.
//
// The whole run draws from rng only, so the same seed and options reproduce
// the same Result, and a run with k+1 restarts replays the first k.
func Solve(cities []tour.City, rng *rand.Rand, opts Options) (*Result, error) {
	if err := tour.ValidateCount(len(cities)); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("search: nil random source")
	}

	slog.Info("Starting multi-start search",
		"cities", len(cities),
		"restarts", opts.Restarts,
		"strategy", opts.Strategy,
	)

	climber := opts.Climber()
	tracker := newConvergenceTracker(opts.Patience, opts.Threshold)
	result := &Result{Best: tour.NewAnswer(), Strategy: opts.Strategy}

	// One working route for the whole run; every restart refills it.
	route := make([]int, len(cities))

	for i := 0; i < opts.Restarts; i++ {
		fillRandomRoute(route, rng)
		ans := climber.Climb(cities, route, rng)

		if ans.Better(result.Best) {
			result.Best = ans
			slog.Debug("New best tour", "restart", i, "distance", ans.Distance)
		} else if result.Best.Route == nil {
			// Keep a well-defined route even while nothing has been measured.
			result.Best.Route = ans.Route
		}

		if i == 0 {
			result.InitialDistance = result.Best.Distance
		}
		result.Restarts = i + 1

		if opts.OnRestart != nil {
			opts.OnRestart(RestartInfo{Restart: i, Answer: ans, Best: result.Best})
		}

		if tracker.Update(result.Best.Distance) {
			result.Converged = true
			break
		}
	}

	slog.Info("Multi-start search complete",
		"restarts", result.Restarts,
		"best_distance", result.Best.Distance,
		"found", result.Best.Found(),
	)

	return result, nil
}
