// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → node id mapping. The function must be
// injective and return non-negative ids. Panics on nil.
func WithIDScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNamePool replaces the display-name pool. Panics on an empty pool or
// an empty name.
func WithNamePool(names []string) BuilderOption {
	if len(names) == 0 {
		panic("builder: WithNamePool(empty)")
	}
	for _, n := range names {
		if n == "" {
			panic("builder: WithNamePool contains an empty name")
		}
	}
	pool := append([]string(nil), names...)

	return func(c *builderConfig) {
		c.names = pool
	}
}

// WithAttributeFn overrides how node attributes are generated. Panics on nil.
func WithAttributeFn(fn AttributeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithAttributeFn(nil)")
	}

	return func(c *builderConfig) {
		c.attrFn = fn
	}
}
