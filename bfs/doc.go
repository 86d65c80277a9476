// Package bfs provides breadth-first search over a social graph,
// returning hop distances, parent links, and discovery order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a BFSResult containing:
//   - Order: discovery sequence (start first)
//   - Depth: map from node → hops from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook per dequeued node (may abort with an error).
//   - Optional MaxDepth limit and per-edge neighbor filter.
//
// Edge weights are ignored: BFS counts hops, not cost.
//
// Determinism
//
//	Neighbors are expanded in core adjacency order, i.e. the order in which
//	edges were inserted, and a node is marked visited when it is enqueued.
//	The visit sequence is therefore fully reproducible for a given sequence
//	of mutations.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(2))
//	if errors.Is(err, bfs.ErrStartNodeNotFound) { ... }
//	path, _ := res.PathTo(7)
//
// Errors
//
//   - ErrGraphNil           if the graph is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
