// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_cycle.go - Cycle(n): a path closed back onto its first user.

package builder

import "github.com/katalvlaran/socialgraph/core"

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
// Edges are emitted in ascending i; the last one closes (n-1, 0).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, MethodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
