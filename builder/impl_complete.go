// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_complete.go - Complete(n): every pair of users is connected.

package builder

import "github.com/katalvlaran/socialgraph/core"

// Complete returns a Constructor that builds K_n (n ≥ 1).
// Edges are emitted for i ascending, j ascending with j > i.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
