// Package core provides the in-memory social graph: users (Node), their
// relationships (Edge) and the Graph that owns both.
//
// The Graph G = (V,E) is weighted and undirected:
//
//   - Nodes are keyed by a non-negative int ID and carry two numeric
//     attributes, Aktiflik (activity) and Etkilesim (interaction).
//   - Edges connect two distinct nodes; (a,b) and (b,a) are the same edge and
//     never coexist. Self-loops and parallel edges are rejected.
//   - Edge weight is derived, never supplied by the caller:
//
//     w(a,b) = 1 + sqrt(Δaktiflik² + Δetkilesim² + Δdegree²)
//
//     where Δdegree is the difference of the endpoints' adjacency lengths
//     measured immediately before the edge is inserted. w ≥ 1 always.
//
// Weight lifecycle:
//
//   - The degree term is frozen when the edge is created (Edge.DegreeDelta).
//     Later insertions or removals elsewhere never touch existing weights.
//   - UpdateNode changes attributes and then recomputes the weight of every
//     incident edge, reusing the frozen degree term. Nothing else recomputes.
//
// Mutation contract:
//
//	All mutations are no-ops on invalid input (unknown id, duplicate, self-loop,
//	empty name). Instead of panicking or returning bare errors they return an
//	Outcome, so callers can tell "created" from "already existed". Outcome.Err
//	maps each no-op reason to a sentinel error for errors.Is style callers.
//
// Determinism:
//
//   - Nodes() and NodeIDs() iterate in node insertion order.
//   - Neighbors(id) returns ids in the order the edges were created.
//   - Edges() returns edges in creation order.
//
// Concurrency:
//
//	A single sync.RWMutex guards the whole graph: mutations take the write
//	lock, queries the read lock. Individual calls are safe across goroutines,
//	but algorithms issue many queries per run, so callers must not mutate a
//	graph while an algorithm is reading it (see package analysis for a facade
//	that serialises the two).
//
// Core methods:
//
//	AddNode(n Node) Outcome                       // O(1)
//	RemoveNode(id int) Outcome                    // O(V + E)
//	UpdateNode(id, name, aktiflik, ...) Outcome   // O(deg(id))
//	AddEdge(a, b int) Outcome                     // O(1) amortized
//	RemoveEdge(a, b int) Outcome                  // O(E)
//	EdgeWeight(a, b int) float64                  // O(1), Infinity if absent
//
// Errors:
//
//	ErrNodeExists    – AddNode with an id already present
//	ErrNodeNotFound  – unknown node id
//	ErrInvalidNode   – negative id, empty name or non-finite attribute
//	ErrEdgeExists    – AddEdge on an already connected pair
//	ErrEdgeNotFound  – RemoveEdge on an unconnected pair
//	ErrSelfLoop      – AddEdge(a, a)
package core
