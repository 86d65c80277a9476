// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in creation order.
//
// Concurrency:
//   - Same single mu as the node catalog; there is no lock ordering to respect.
package core

// AddEdge connects a and b.
//
// Implementation:
//   - Stage 1: Reject self-loops, unknown endpoints and existing pairs.
//   - Stage 2: Read both adjacency lengths before insertion and freeze their
//     difference into the new edge.
//   - Stage 3: Append to the edge list and both adjacency lists.
//
// Returns:
//   - OutcomeApplied on insertion.
//   - OutcomeSelfLoop if a == b.
//   - OutcomeNotFound if either endpoint is unknown.
//   - OutcomeExists if the unordered pair is already connected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b int) Outcome {
	if a == b {
		return OutcomeSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return OutcomeNotFound
	}
	k := keyOf(a, b)
	if _, dup := g.index[k]; dup {
		return OutcomeExists
	}

	delta := float64(len(g.adjacency[a]) - len(g.adjacency[b]))
	e := &Edge{
		Source:      a,
		Target:      b,
		Weight:      ComputeWeight(*na, *nb, delta),
		degreeDelta: delta,
	}
	g.edges = append(g.edges, e)
	g.index[k] = e
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)

	return OutcomeApplied
}

// RemoveEdge deletes the edge between a and b in either orientation, along
// with both mirrored adjacency entries.
//
// Returns OutcomeNotFound if the pair is not connected (including unknown ids).
// Complexity: O(E) for the ordered edge list.
func (g *Graph) RemoveEdge(a, b int) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	k := keyOf(a, b)
	e, ok := g.index[k]
	if !ok {
		return OutcomeNotFound
	}
	delete(g.index, k)
	for i, cur := range g.edges {
		if cur == e {
			copy(g.edges[i:], g.edges[i+1:])
			g.edges[len(g.edges)-1] = nil
			g.edges = g.edges[:len(g.edges)-1]

			break
		}
	}
	g.adjacency[a] = removeID(g.adjacency[a], b)
	g.adjacency[b] = removeID(g.adjacency[b], a)

	return OutcomeApplied
}

// HasEdge reports whether a and b are connected.
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	_, ok := g.index[keyOf(a, b)]
	g.mu.RUnlock()

	return ok
}

// EdgeWeight returns the weight of the a–b edge, or Infinity when the pair is
// not connected or either id is unknown.
// Complexity: O(1).
func (g *Graph) EdgeWeight(a, b int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e, ok := g.index[keyOf(a, b)]; ok {
		return e.Weight
	}

	return Infinity
}

// Edge returns a copy of the a–b edge in its stored orientation.
func (g *Graph) Edge(a, b int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.index[keyOf(a, b)]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
