// Package builder provides helper functions and types for configuring
// arc-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Bounds of DefaultWeightFn, matching the road-network generator.
const (
	DefaultMinWeight float64 = 1
	DefaultMaxWeight float64 = 100
)

// WeightFn produces an arc weight from an optional *rand.Rand source. It
// must return a finite, non-negative value and be deterministic for a given
// RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn samples uniformly in [DefaultMinWeight, DefaultMaxWeight).
// With a nil rng it returns DefaultMinWeight.
func DefaultWeightFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultMinWeight
	}

	return DefaultMinWeight + rng.Float64()*(DefaultMaxWeight-DefaultMinWeight)
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is negative or not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max. A nil rng yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min || math.IsInf(max, 0) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < +Inf, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling N(mean, stddev) clipped at 0.
// Panics if stddev < 0. A nil rng yields max(mean, 0).
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		sample := mean
		if rng != nil {
			sample += rng.NormFloat64() * stddev
		}

		return math.Max(sample, 0)
	}
}

// ExponentialWeightFn returns a WeightFn sampling Exp(rate), mean 1/rate.
// Panics if rate ≤ 0. A nil rng yields the mean.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return 1 / rate
		}

		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight sets a fixed arc weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
