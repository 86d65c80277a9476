// Package socialgraph is an in-memory social network: users with activity
// and interaction scores, undirected friendships weighted by how different
// two users are, and the algorithms used to explore them.
//
// What is in the box?
//
//	core/        - Graph, Node, Edge; mutation outcomes; thread-safe primitives
//	bfs/, dfs/   - traversals with hooks, depth limits and neighbour filters
//	dijkstra/    - cheapest path with deterministic tie-breaking
//	astar/       - goal-directed cheapest path with an aktiflik heuristic
//	centrality/  - degree ranking and pairwise-path betweenness
//	coloring/    - Welsh–Powell colouring over a palette
//	components/  - connected components (communities)
//	backbone/    - minimum spanning forest (Kruskal, Prim)
//	builder/     - deterministic and seeded random network generators
//	converters/  - CSV and JSON datasets, text reports
//	analysis/    - instrumented facade (zap, Prometheus, OpenTelemetry)
//	server/      - gin JSON API over analysis
//	cmd/socialgraph - cobra CLI, including `serve`
//
// Edge weight:
//
//	w(a, b) = 1 + sqrt((a.Aktiflik−b.Aktiflik)² + (a.Etkilesim−b.Etkilesim)² + Δdeg²)
//
// where Δdeg is the difference of the endpoints' degrees just before the
// edge is inserted. The degree term is frozen; attribute updates recompute
// the rest.
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddNode(core.Node{ID: 1, Name: "Ali", Aktiflik: 0.5, Etkilesim: 1})
//	g.AddNode(core.Node{ID: 2, Name: "Ayse", Aktiflik: 0.5, Etkilesim: 4})
//	g.AddEdge(1, 2)                       // OutcomeApplied, weight 4
//	res, _ := dijkstra.ShortestPath(g, 1, 2) // Path [1 2], Cost 4
//
// Determinism: every iteration follows insertion order, and every priority
// queue breaks ties by the smaller id, so the same inputs always produce the
// same traversal orders, paths and colourings.
package socialgraph
