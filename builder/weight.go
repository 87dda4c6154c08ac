package builder

import (
	"fmt"
	"math/rand/v2"
)

// DefaultEdgeWeight is the weight of DefaultWeightFn.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight. rng is nil unless WithSeed or WithRand
// was given.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws integers uniformly from [min, max]; integer weights
// keep the editor's labels short. Without an rng it returns min. Panics
// when max < min.
func UniformWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("builder: UniformWeightFn: max %d < min %d", max, min))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}
		return float64(min + rng.IntN(max-min+1))
	}
}
