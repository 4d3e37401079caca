// Package builder_test contains unit tests for the WeightFn implementations,
// covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spbench/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic on
// invalid parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"ConstantWeightFn_inf", func() builder.WeightFn { return builder.ConstantWeightFn(math.Inf(1)) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn: every
// sample is finite and non-negative, and nil RNGs fall back to a fixed value.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	if w := builder.DefaultWeightFn(nil); w != builder.DefaultMinWeight {
		t.Errorf("DefaultWeightFn(nil) = %g; want %g", w, builder.DefaultMinWeight)
	}
	for i := 0; i < 1000; i++ {
		w := builder.DefaultWeightFn(rng)
		if w < builder.DefaultMinWeight || w >= builder.DefaultMaxWeight {
			t.Fatalf("DefaultWeightFn out of [1,100): %g", w)
		}
	}

	if w := builder.ConstantWeightFn(0)(rng); w != 0 {
		t.Errorf("ConstantWeightFn(0) = %g", w)
	}

	uni := builder.UniformWeightFn(2, 4)
	if w := uni(nil); w != 2 {
		t.Errorf("UniformWeightFn(nil rng) = %g; want 2", w)
	}
	for i := 0; i < 100; i++ {
		if w := uni(rng); w < 2 || w >= 4 {
			t.Fatalf("UniformWeightFn out of [2,4): %g", w)
		}
	}

	norm := builder.NormalWeightFn(1, 10)
	exp := builder.ExponentialWeightFn(0.5)
	for i := 0; i < 1000; i++ {
		if w := norm(rng); w < 0 || math.IsNaN(w) {
			t.Fatalf("NormalWeightFn produced %g", w)
		}
		if w := exp(rng); w < 0 || math.IsInf(w, 0) {
			t.Fatalf("ExponentialWeightFn produced %g", w)
		}
	}
	if w := exp(nil); w != 2 {
		t.Errorf("ExponentialWeightFn(nil rng) = %g; want mean 2", w)
	}
}
