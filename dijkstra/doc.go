// Package dijkstra implements label-setting shortest paths over the social
// graph, where every edge weight is ≥ 1.
//
// Overview:
//
//   - ShortestPath(g, start, end) answers a single pair and stops as soon as
//     end is settled.
//   - Distances(g, source, opts...) settles every reachable node, optionally
//     capped by WithMaxDistance.
//   - The heap is keyed by (distance, node id): among equal distances the
//     smaller id is expanded first, which fixes which of several equal-cost
//     paths is reported.
//   - Lazy decrease-key: improved distances push duplicates, stale entries are
//     skipped on pop.
//
// Result conventions:
//
//   - Unreachable pairs return Result{Path: nil, Cost: +Inf}; check Reachable().
//   - Unknown endpoints return the same sentinel result together with an error
//     wrapping core.ErrNodeNotFound.
//   - start == end returns Path [start] at Cost 0.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap holds up to E entries under lazy decrease-key)
//
// Thread safety:
//
//   - The algorithm only reads through core.Reader. Do not mutate the graph
//     while a search is running.
package dijkstra
