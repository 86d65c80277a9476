// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn   = idx + 1           (1, 2, 3, ...)
//   • rng    = nil               (pure/deterministic unless seeded)
//   • names  = DefaultNamePool
//   • attrFn = defaultAttributes (random when rng is set, constant otherwise)

package builder

import (
	"math"
	"math/rand"
	"strconv"
)

// AttributeFn returns (aktiflik, etkilesim) for the node at index idx.
// r is the configured RNG and may be nil.
type AttributeFn func(r *rand.Rand, idx int) (aktiflik, etkilesim float64)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn   func(int) int
	rng    *rand.Rand
	names  []string
	attrFn AttributeFn
}

const (
	defaultAktiflik  = 0.5
	defaultEtkilesim = 1.0
	minAktiflik      = 0.1
	maxAktiflik      = 1.0
	maxEtkilesim     = 50
)

// newBuilderConfig applies options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   func(i int) int { return i + 1 },
		names:  DefaultNamePool,
		attrFn: defaultAttributes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// defaultAttributes draws aktiflik ~ U(0.1, 1.0) rounded to 2 dp and
// etkilesim ~ U{1..50}; constant values without an RNG.
func defaultAttributes(r *rand.Rand, _ int) (float64, float64) {
	if r == nil {
		return defaultAktiflik, defaultEtkilesim
	}
	a := minAktiflik + (maxAktiflik-minAktiflik)*r.Float64()

	return math.Round(a*100) / 100, float64(1 + r.Intn(maxEtkilesim))
}

// nameFor picks the display name for index idx; after the pool wraps, names
// get a numeric suffix so every generated user stays distinguishable.
func (c builderConfig) nameFor(idx int) string {
	pool := c.names
	base := pool[idx%len(pool)]
	if idx < len(pool) {
		return base
	}

	return base + strconv.Itoa(idx/len(pool)+1)
}
