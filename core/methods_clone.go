// File: methods_clone.go
// Role: Deep copy.
package core

// Clone returns an independent deep copy: same nodes, same edges with their
// frozen degree terms and weights, same orderings. Mutating either graph
// never affects the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithCapacity(len(g.nodes)))
	for _, id := range g.order {
		n := *g.nodes[id]
		c.nodes[id] = &n
		c.order = append(c.order, id)
		if adj := g.adjacency[id]; len(adj) > 0 {
			c.adjacency[id] = append([]int(nil), adj...)
		} else {
			c.adjacency[id] = nil
		}
	}
	c.edges = make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		ce := *e
		c.edges = append(c.edges, &ce)
		c.index[keyOf(ce.Source, ce.Target)] = &ce
	}

	return c
}
