// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only surface handed to algorithms, plus summary statistics.

package core

// Reader is the read-only view algorithms operate on. *Graph implements it;
// algorithm packages never need the mutating methods.
type Reader interface {
	HasNode(id int) bool
	Node(id int) (Node, bool)
	NodeIDs() []int
	Neighbors(id int) []int
	Degree(id int) int
	EdgeWeight(a, b int) float64
}

var _ Reader = (*Graph)(nil)

// Stats is a point-in-time summary of a graph.
type Stats struct {
	Nodes   int     `json:"nodes"`
	Edges   int     `json:"edges"`
	Density float64 `json:"density"`

	// MeanWeight is the average edge weight (0 without edges).
	MeanWeight float64 `json:"mean_weight"`

	// Isolated counts nodes of degree 0.
	Isolated int `json:"isolated"`
}

// Stats returns node/edge counts and density E / (n(n−1)/2).
// Density is 0 for fewer than two nodes.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
	if s.Nodes > 1 {
		maxEdges := float64(s.Nodes) * float64(s.Nodes-1) / 2
		s.Density = float64(s.Edges) / maxEdges
	}
	if s.Edges > 0 {
		var sum float64
		for _, e := range g.edges {
			sum += e.Weight
		}
		s.MeanWeight = sum / float64(s.Edges)
	}
	for _, adj := range g.adjacency {
		if len(adj) == 0 {
			s.Isolated++
		}
	}

	return s
}

// IsNil reports whether r is nil or a typed-nil *Graph stored in the interface.
func IsNil(r Reader) bool {
	if r == nil {
		return true
	}
	g, ok := r.(*Graph)

	return ok && g == nil
}
