// Package opt adapts continuous black-box optimizers to a common interface.
package opt

// Optimizer minimizes an objective over a box-bounded real vector
type Optimizer interface {
	// Run minimizes eval over dim coordinates bounded by lower and upper.
	// Returns the best position found and its cost.
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64)
}

// Factory builds an Optimizer for one seeded run
type Factory func(seed int64) Optimizer
