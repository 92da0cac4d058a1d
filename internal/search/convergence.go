package search

import (
	"log/slog"
	"math"
)

// convergenceTracker stops a multi-start run once the global best stops
// improving by at least a relative threshold for patience restarts in a row.
type convergenceTracker struct {
	patience        int
	threshold       float64
	lastSignificant float64
	staleCount      int
}

func newConvergenceTracker(patience int, threshold float64) *convergenceTracker {
	return &convergenceTracker{
		patience:        patience,
		threshold:       threshold,
		lastSignificant: math.Inf(1),
	}
}

// Update records the global best after a restart and reports whether to stop.
// A tracker with zero patience never stops.
func (c *convergenceTracker) Update(best float64) bool {
	if c.patience <= 0 {
		return false
	}

	if math.IsInf(c.lastSignificant, 1) {
		c.lastSignificant = best
		return false
	}

	rel := (c.lastSignificant - best) / c.lastSignificant
	if rel >= c.threshold && rel > 0 {
		c.lastSignificant = best
		c.staleCount = 0
		return false
	}

	c.staleCount++
	if c.staleCount >= c.patience {
		slog.Info("Convergence detected - stopping early",
			"stale_restarts", c.staleCount,
			"patience", c.patience,
			"best_distance", best,
		)
		return true
	}
	return false
}
