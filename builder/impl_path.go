// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_path.go - Path(n): users 0..n-1 linked in index order.

package builder

import "github.com/katalvlaran/socialgraph/core"

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// Edges are emitted (0,1), (1,2), ..., (n-2,n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
