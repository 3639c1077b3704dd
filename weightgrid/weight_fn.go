package weightgrid

import (
	"fmt"
	"math/rand"
)

// WeightFn produces one cell weight from an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int

// ConstantWeightFn returns a WeightFn that always yields value.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int) WeightFn {
	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if max < min or either bound exceeds ±MaxWeightMagnitude.
// If rng is nil, yields min to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	if min < -MaxWeightMagnitude || max > MaxWeightMagnitude {
		panic(fmt.Sprintf("UniformWeightFn: [%d,%d] exceeds ±%d", min, max, MaxWeightMagnitude))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// DefaultWeightFn samples uniformly in [DefaultMinWeight, DefaultMaxWeight].
var DefaultWeightFn = UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)
