// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_random_social.go - RandomSocial(n, p): a connected random network.
//
// Model:
//   - Backbone: users i and i+1 are always friends, so the graph is connected.
//   - Extras: every pair (i, j) with j ≥ i+2 becomes friends with probability p.
//
// Determinism: attributes are drawn first (index order), then backbone edges
// in ascending i, then extra pairs for i asc, j asc.

package builder

import "github.com/katalvlaran/socialgraph/core"

// RandomSocial returns a Constructor for a connected random social graph.
// Complexity: O(n²).
func RandomSocial(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodRandomSocial, n, MinRandomNodes); err != nil {
			return err
		}
		if err := checkProbability(MethodRandomSocial, p, cfg); err != nil {
			return err
		}
		if err := addNodes(g, cfg, MethodRandomSocial, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, MethodRandomSocial, i, i+1); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err := connect(g, cfg, MethodRandomSocial, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
