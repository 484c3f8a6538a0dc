// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// options.go — functional options for the sampling generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals beyond the documented default: an unseeded call
//     draws from the process-wide math/rand source, matching the original
//     ambient-RNG behavior.

package dataset

import (
	"math/rand"
)

// Option customizes a generator call by mutating its config before any
// sampling begins. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all knobs used by the sampling generators.
// It is resolved once per call and passed by value (immutable to callers).
type config struct {
	// RNG for coordinate draws; nil means the shared process-wide source.
	rng *rand.Rand
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order; later options override earlier ones.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG for the sampler. Panics on nil; prefer
// WithSeed for reproducible runs. Concurrent callers must supply independent
// sources — the package does not lock a shared *rand.Rand.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// float64From draws one uniform value in [0,1) from the configured source,
// falling back to the process-wide generator when none was injected.
func (c config) float64From() float64 {
	if c.rng != nil {
		return c.rng.Float64()
	}
	return rand.Float64()
}
