// Package dfs implements iterative depth-first search (single-source and
// forest) over a social graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or every component via WithFullTraversal
//   - Explicit stack: no recursion, so deep chains cannot exhaust the goroutine stack
//   - Lowest id first: neighbors are pushed in descending id order
//   - Pop-time visited check: duplicates may sit on the stack, each node is visited once
//   - Hooks: OnVisit (pre-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E log Δ) where Δ is the max degree (per-node neighbor sort).
//   - Memory: O(V + E) for the stack in the worst case.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartNodeNotFound   if start is missing (single-source mode).
//   - context.Canceled       if ctx is done.
//   - any error returned by OnVisit.
package dfs
