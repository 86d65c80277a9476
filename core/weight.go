// File: weight.go
// Role: Attribute-derived edge weight.

package core

import "math"

// ComputeWeight returns 1 + sqrt(Δaktiflik² + Δetkilesim² + degreeDelta²).
//
// degreeDelta is the (signed or absolute, it is squared) difference of the
// endpoints' adjacency lengths. The result is always ≥ 1 and finite for
// finite inputs.
// Complexity: O(1).
func ComputeWeight(a, b Node, degreeDelta float64) float64 {
	da := a.Aktiflik - b.Aktiflik
	de := a.Etkilesim - b.Etkilesim

	return 1 + math.Sqrt(da*da+de*de+degreeDelta*degreeDelta)
}
