// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_star.go - Star(n): index 0 is the hub, 1..n-1 are leaves.

package builder

import "github.com/katalvlaran/socialgraph/core"

// Star returns a Constructor that builds a star with n-1 leaves (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, MethodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
