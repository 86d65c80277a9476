// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi sampling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required for 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: users are added in index order, then unordered pairs are
// tried for i asc, j asc (j > i), one Bernoulli draw each.

package builder

import "github.com/katalvlaran/socialgraph/core"

// RandomSparse returns a Constructor that includes each of the n(n-1)/2
// possible friendships independently with probability p.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodRandomSparse, n, MinRandomNodes); err != nil {
			return err
		}
		if err := checkProbability(MethodRandomSparse, p, cfg); err != nil {
			return err
		}
		if err := addNodes(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err := connect(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
