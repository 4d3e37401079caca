// SPDX-License-Identifier: MIT
// Package: spbench/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn           ("0","1","2",...)
//   - rng      = seeded with DefaultSeed
//   - weightFn = DefaultWeightFn       (uniform in [1,100))

package builder

import "math/rand"

const (
	// DefaultSeed seeds the random stream when neither WithSeed nor WithRand
	// is given.
	DefaultSeed int64 = 42

	defaultProject = "spbench_synthetic"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
