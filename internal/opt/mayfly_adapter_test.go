package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sphere function shifted to (0.25, ..., 0.25)
func shiftedSphere(x []float64) float64 {
	var sum float64
	for _, v := range x {
		d := v - 0.25
		sum += d * d
	}
	return sum
}

func unitBox(dim int) ([]float64, []float64) {
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := range upper {
		upper[i] = 1
	}
	return lower, upper
}

func TestMayflyAdapterOnSphere(t *testing.T) {
	optimizer := NewMayfly(100, 20, 42)

	dim := 3
	lower, upper := unitBox(dim)
	best, cost := optimizer.Run(shiftedSphere, lower, upper, dim)

	require.Len(t, best, dim)
	assert.Less(t, cost, 0.05)
	for i, v := range best {
		assert.InDelta(t, 0.25, v, 0.25, "coordinate %d", i)
	}
}

func TestMayflyAdapterDeterministic(t *testing.T) {
	lower, upper := unitBox(2)

	_, cost1 := NewMayfly(50, 20, 123).Run(shiftedSphere, lower, upper, 2)
	_, cost2 := MayflyFactory(50, 20)(123).Run(shiftedSphere, lower, upper, 2)

	assert.Equal(t, cost1, cost2)
}

func TestNewMayflyRaisesPopulation(t *testing.T) {
	m := NewMayfly(10, 5, 1).(*MayflyAdapter)
	assert.Equal(t, MinMayflyPopulation, m.popSize)
}
