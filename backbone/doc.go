// Package backbone extracts the cheapest set of friendships that keeps every
// community of a social graph connected: a minimum spanning forest over the
// edge weights.
//
// A connected graph yields a single tree with n−1 edges. A disconnected graph
// yields one tree per component (isolated users are trees without edges), so
// Result.Trees always equals the number of connected components.
//
// Two methods are provided and always agree on Total:
//
//	KruskalForest  O(E log E)  global sort plus union-find
//	PrimForest     O(E log V)  per-component growth from a binary heap
//
// Determinism:
//   - Candidate ties are enumerated once per unordered pair, oriented by node
//     insertion order, and equal weights resolve by that enumeration order.
//     Repeated calls on the same graph return identical results.
package backbone
