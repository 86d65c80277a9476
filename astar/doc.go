// Package astar implements heuristic-guided shortest-path search over the
// social graph.
//
// The priority of a frontier node n is f(n) = g(n) + h(n), where g is the
// accumulated edge weight from start and
//
//	h(n) = |aktiflik(n) − aktiflik(end)|
//
// Equal f values pop the smaller node id first. A predecessor is recorded
// only when a strictly better g is found, and the search stops when end is
// popped.
//
// Every edge weight is 1 + sqrt(Δaktiflik² + ...) ≥ |Δaktiflik|, so h never
// drops by more than the edge it crosses. The default heuristic is therefore
// consistent and the reported cost equals Dijkstra's; among equal-cost routes
// the chosen path may differ. Custom heuristics (WithHeuristic) carry no such
// guarantee, and a node is reopened whenever a strictly better g reaches it.
//
// Results use dijkstra.Result: unreachable pairs give Path nil and Cost +Inf;
// unknown endpoints additionally return an error wrapping core.ErrNodeNotFound.
//
// Complexity: O((V + E) log V) worst case, typically fewer expansions than
// Dijkstra when aktiflik correlates with distance.
package astar
