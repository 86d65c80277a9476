// Package centrality ranks users of a social graph.
//
// What:
//
//   - Degree(g, opts...) ranks nodes by adjacency length, descending.
//   - Betweenness(ctx, g, opts...) counts, for every unordered pair of
//     nodes, how often each node lies strictly inside the Dijkstra shortest
//     path between them, and ranks by that count.
//
// Ordering:
//
//	Both rankings use a stable sort over node insertion order, so equal
//	scores keep the order in which nodes were added. Only the first K entries
//	are returned (WithTopK, default 5; K ≤ 0 returns every node).
//
// Concurrency:
//
//	Betweenness fans the pair sweep out over an errgroup bounded by
//	WithWorkers. Workers only read the graph; the caller must not mutate it
//	during the sweep. Cancelling ctx stops the sweep and returns ctx.Err().
//
// Complexity:
//
//   - Degree:      O(V log V)
//   - Betweenness: O(V² · (V + E) log V)
package centrality
