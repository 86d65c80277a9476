// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_wheel.go - Wheel(n): hub at index 0 plus a rim cycle over 1..n-1.

package builder

import "github.com/katalvlaran/socialgraph/core"

// Wheel returns a Constructor that builds W_n (n ≥ 4): the rim edges first,
// in ascending order, then the spokes from the hub.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, MethodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := connect(g, cfg, MethodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, MethodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
