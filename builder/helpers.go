// Package builder provides internal helpers shared by constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// addNodes inserts n users with ids cfg.idFn(0..n-1), drawing attributes in
// index order so a seeded RNG yields the same users every run.
// Complexity: O(n).
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		akt, etk := cfg.attrFn(cfg.rng, i)
		node := core.Node{ID: cfg.idFn(i), Name: cfg.nameFor(i), Aktiflik: akt, Etkilesim: etk}
		if o := g.AddNode(node); !o.Applied() {
			return fmt.Errorf("%s: AddNode(%d): %w: %w", method, node.ID, o.Err(), ErrConstructFailed)
		}
	}

	return nil
}

// connect adds the edge between indices i and j.
func connect(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if o := g.AddEdge(u, v); !o.Applied() {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w: %w", method, u, v, o.EdgeErr(false), ErrConstructFailed)
	}

	return nil
}

// checkMin validates n ≥ min.
func checkMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// checkProbability validates p ∈ [0,1] and an RNG for 0 < p < 1.
func checkProbability(method string, p float64, cfg builderConfig) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// bernoulli reports a success with probability p; p ∈ {0,1} needs no RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
