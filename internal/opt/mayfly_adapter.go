package opt

import (
	"log/slog"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MinMayflyPopulation is the smallest population the mayfly library accepts
const MinMayflyPopulation = 20

// MayflyAdapter runs the mayfly algorithm behind the Optimizer interface
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a seeded Mayfly optimizer.
// popSize below MinMayflyPopulation is raised to it.
func NewMayfly(maxIters, popSize int, seed int64) Optimizer {
	if popSize < MinMayflyPopulation {
		popSize = MinMayflyPopulation
	}
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// MayflyFactory returns a Factory producing Mayfly optimizers with fixed budget
func MayflyFactory(maxIters, popSize int) Factory {
	return func(seed int64) Optimizer {
		return NewMayfly(maxIters, popSize, seed)
	}
}

// Run executes one Mayfly optimization.
// The library takes scalar bounds, so lower[0] and upper[0] apply to every coordinate.
// If the library rejects the configuration, the midpoint of the box is returned.
func (m *MayflyAdapter) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64) {
	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = eval
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = lower[0]
	config.UpperBound = upper[0]
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		slog.Warn("Mayfly optimization failed, using box midpoint", "error", err, "dim", dim)
		mid := make([]float64, dim)
		for i := range mid {
			mid[i] = (lower[0] + upper[0]) / 2
		}
		return mid, eval(mid)
	}

	return result.GlobalBest.Position, result.GlobalBest.Cost
}
