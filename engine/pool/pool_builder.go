package pool

import "math/rand"

// InstancePoolBuilderOption is a functional option for configuring an InstancePool.
type InstancePoolBuilderOption func(*instancePool)

// WithRegionSize sets the side length of the cube objects are scattered in.
//
// Parameters:
//   - size: the region side length, must be positive
//
// Returns:
//   - InstancePoolBuilderOption: the option to apply
func WithRegionSize(size float32) InstancePoolBuilderOption {
	return func(p *instancePool) {
		if size > 0 {
			p.regionSize = size
		}
	}
}

// WithRandSource seeds the pool's placement randomness, for reproducible layouts.
//
// Parameters:
//   - seed: the random source seed
//
// Returns:
//   - InstancePoolBuilderOption: the option to apply
func WithRandSource(seed int64) InstancePoolBuilderOption {
	return func(p *instancePool) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}
