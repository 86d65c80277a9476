// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() follow node insertion order.
//
// Concurrency:
//   - Mutations hold mu for writing; queries hold it for reading.
package core

// UpdateOption tweaks optional fields during UpdateNode.
type UpdateOption func(n *Node)

// WithEtkilesim also overwrites the interaction score.
func WithEtkilesim(v float64) UpdateOption {
	return func(n *Node) { n.Etkilesim = v }
}

// AddNode inserts n if its ID is new and creates an empty adjacency entry.
//
// Returns:
//   - OutcomeApplied on insertion.
//   - OutcomeExists if the ID is taken (existing node untouched).
//   - OutcomeInvalid if n.ID < 0, n.Name == "" or an attribute is NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) Outcome {
	if !n.valid() {
		return OutcomeInvalid
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[n.ID]; ok {
		return OutcomeExists
	}
	stored := n
	g.nodes[n.ID] = &stored
	g.order = append(g.order, n.ID)
	g.adjacency[n.ID] = nil

	return OutcomeApplied
}

// RemoveNode deletes the node, every incident edge, and its id from every
// other adjacency list. Weights of surviving edges are left as they are.
//
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id int) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return OutcomeNotFound
	}

	for _, nb := range g.adjacency[id] {
		g.adjacency[nb] = removeID(g.adjacency[nb], id)
		delete(g.index, keyOf(id, nb))
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)
	g.order = removeID(g.order, id)

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	// clear the tail so dropped edges can be collected
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	return OutcomeApplied
}

// UpdateNode overwrites Name and Aktiflik (and Etkilesim with WithEtkilesim),
// then recomputes the weight of every incident edge with its frozen degree
// term.
//
// Returns OutcomeNotFound for an unknown id and OutcomeInvalid for an empty
// name or a non-finite attribute; both leave the graph untouched.
//
// Complexity: O(deg(id)).
func (g *Graph) UpdateNode(id int, name string, aktiflik float64, opts ...UpdateOption) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return OutcomeNotFound
	}
	next := *n
	next.Name = name
	next.Aktiflik = aktiflik
	for _, opt := range opts {
		opt(&next)
	}
	next.ID = id // options may not move the node
	if !next.valid() {
		return OutcomeInvalid
	}

	*n = next
	g.recomputeIncidentWeights(id)

	return OutcomeApplied
}

// recomputeIncidentWeights refreshes Weight for every edge touching id.
// Caller must hold mu for writing.
func (g *Graph) recomputeIncidentWeights(id int) {
	self := g.nodes[id]
	for _, nb := range g.adjacency[id] {
		e := g.index[keyOf(id, nb)]
		e.Weight = ComputeWeight(*self, *g.nodes[nb], e.degreeDelta)
	}
}

// Node returns a copy of the node with the given id.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	_, ok := g.nodes[id]
	g.mu.RUnlock()

	return ok
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeIDs returns all ids in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// removeID deletes the first occurrence of id, preserving order.
func removeID(s []int, id int) []int {
	for i, v := range s {
		if v == id {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
