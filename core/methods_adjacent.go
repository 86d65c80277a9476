// File: methods_adjacent.go
// Role: Neighborhood queries.
package core

// Neighbors returns the ids adjacent to id in edge-creation order.
// Unknown ids yield nil.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok || len(adj) == 0 {
		return nil
	}
	out := make([]int, len(adj))
	copy(out, adj)

	return out
}

// Degree returns the adjacency length of id (0 for unknown ids).
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Degrees returns id → degree for every node.
// Complexity: O(V).
func (g *Graph) Degrees() map[int]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]int, len(g.adjacency))
	for id, adj := range g.adjacency {
		out[id] = len(adj)
	}

	return out
}
