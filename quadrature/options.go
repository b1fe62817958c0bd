// SPDX-License-Identifier: MIT
// Package: quadlab/quadrature
//
// options.go — functional options for the estimators.
//
// Contract (strict):
//   • Only the random rectangle rule consumes randomness; the RNG is always
//     injected through an option, never taken from package state.
//   • WithRand panics on nil; estimators never panic on user data.
//   • Without WithRand/WithSeed a time-seeded source is created per call,
//     so random-rule results differ between runs.

package quadrature

import (
	"math/rand"
	"time"
)

// Option customizes an estimator call.
type Option func(*config)

type config struct {
	// RNG for the random rectangle rule; nil until resolved.
	rng *rand.Rand
}

// newConfig applies opts in order and resolves a missing RNG to a
// time-seeded source.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithRand provides an explicit RNG for the random rectangle rule.
// Sharing one *rand.Rand across calls yields one reproducible stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("quadrature: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a fresh seeded RNG, making the random rule deterministic.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
