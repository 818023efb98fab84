// SPDX-License-Identifier: MIT
// Package: shortestpath/builder
//
// config.go - internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • idFn   = prefix + decimal index ("v0","v1",...)
//   • rng    = nil (pure/deterministic unless seeded)
//   • costFn = constant 1
//
// Option constructors validate and panic on meaningless inputs.
// Constructors themselves never panic.

package builder

import (
	"math"
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node key strategy: index -> key.
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Cost generator for edges; receives the (possibly nil) RNG.
	costFn func(*rand.Rand) int64
}

const (
	defaultIDPrefix  = "v"
	defaultConstCost = int64(1)
)

// Option customizes construction by mutating a builderConfig before any
// constructor runs.
type Option func(*builderConfig)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:   prefixID(defaultIDPrefix),
		costFn: func(*rand.Rand) int64 { return defaultConstCost },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func prefixID(prefix string) func(int) string {
	return func(i int) string { return prefix + strconv.Itoa(i) }
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDPrefix sets the node key prefix ("v" by default). Grid keys are
// always "r,c" and ignore the prefix.
func WithIDPrefix(prefix string) Option {
	return func(c *builderConfig) {
		c.idFn = prefixID(prefix)
	}
}

// WithCostRange draws each edge cost uniformly from [lo, hi].
// Without an RNG (no WithSeed) every edge costs lo.
// Panics with ErrInvalidCostRange if lo < 0 or hi < lo.
func WithCostRange(lo, hi int64) Option {
	if lo < 0 || hi < lo {
		panic(ErrInvalidCostRange.Error())
	}
	return func(c *builderConfig) {
		c.costFn = func(r *rand.Rand) int64 {
			if r == nil || hi == lo {
				return lo
			}
			// hi-lo+1 overflows only for [0, MaxInt64].
			if hi-lo == math.MaxInt64 {
				return r.Int63()
			}
			return lo + r.Int63n(hi-lo+1)
		}
	}
}
