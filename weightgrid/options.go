package weightgrid

import (
	"fmt"
	"math/rand"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// Option customizes grid construction by mutating a gridConfig before the
// weights are drawn. Option constructors validate and panic on meaningless
// input; constructors themselves never panic.
type Option func(*gridConfig)

// gridConfig aggregates all construction knobs. Passed by value.
type gridConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	bounds   Bounds
	policy   MovePolicy
}

// newGridConfig applies opts over deterministic defaults (last wins).
// Complexity: O(len(opts)).
func newGridConfig(opts ...Option) gridConfig {
	cfg := gridConfig{
		weightFn: DefaultWeightFn,
		bounds:   DefaultBounds(),
		policy:   Strict,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// WithSeed draws weights from a fresh source seeded with seed.
// Two grids built with the same seed, size and WeightFn are identical.
func WithSeed(seed int64) Option {
	return func(c *gridConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("weightgrid: WithRand(nil)")
	}
	return func(c *gridConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-cell weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("weightgrid: WithWeightFn(nil)")
	}
	return func(c *gridConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithWeightRange(min, max int) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithBounds sets the inclusive range accepted for width and height.
// Panics unless 1 ≤ min ≤ max ≤ HardMaxDim.
func WithBounds(min, max int) Option {
	if min < 1 || max < min || max > HardMaxDim {
		panic(fmt.Sprintf("weightgrid: WithBounds(%d, %d) requires 1 ≤ min ≤ max ≤ %d", min, max, HardMaxDim))
	}
	return func(c *gridConfig) {
		c.bounds = Bounds{Min: min, Max: max}
	}
}

// WithMovePolicy selects Strict or Permissive cursor movement.
func WithMovePolicy(p MovePolicy) Option {
	if p != Strict && p != Permissive {
		panic(fmt.Sprintf("weightgrid: WithMovePolicy(%d)", int(p)))
	}
	return func(c *gridConfig) {
		c.policy = p
	}
}
