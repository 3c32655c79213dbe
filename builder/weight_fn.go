package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DetourFn returns the factor applied to the geodesic length of one edge.
// Factors are ≥ 1, which keeps the great-circle heuristic admissible. The rng
// may be nil; implementations must then stay deterministic.
type DetourFn func(rng *rand.Rand) float64

// ExactDetour weights every edge with its geodesic length.
func ExactDetour(_ *rand.Rand) float64 { return 1 }

// ConstantDetour stretches every edge by factor. Panics unless factor is
// finite and ≥ 1.
func ConstantDetour(factor float64) DetourFn {
	if !(factor >= 1) || math.IsInf(factor, 0) {
		panic(fmt.Sprintf("ConstantDetour: factor must be finite and ≥ 1, got %v", factor))
	}

	return func(_ *rand.Rand) float64 { return factor }
}

// UniformDetour draws a factor uniformly from [1, max). Without an rng it
// falls back to 1. Panics unless max is finite and ≥ 1.
func UniformDetour(max float64) DetourFn {
	if !(max >= 1) || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformDetour: max must be finite and ≥ 1, got %v", max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return 1
		}

		return 1 + rng.Float64()*(max-1)
	}
}
