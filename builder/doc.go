// Package builder assembles social graphs for tests, demos and the CLI
// `generate` command, using functional options and composable constructors.
//
// The package offers:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): creates a core.Graph, resolves the
//     builder configuration once, runs every Constructor in order.
//   - Constructors:
//     – RandomSocial(n, p): chain backbone 1–2–…–n plus independent extra
//     friendships with probability p between non-consecutive users.
//     – RandomSparse(n, p): plain Erdős–Rényi sampling, no backbone.
//     – Path, Cycle, Star, Wheel, Complete: deterministic fixtures.
//   - Options:
//     – WithSeed / WithRand: RNG for stochastic constructors and attributes.
//     – WithIDScheme:       index → node id (default idx+1).
//     – WithNamePool:       display-name pool (default: Turkish first names).
//     – WithAttributeFn:    index → (aktiflik, etkilesim).
//
// Attributes:
//
//	With an RNG and no WithAttributeFn, aktiflik is drawn from U(0.1, 1.0) and
//	rounded to two decimals, etkilesim from the integers 1..50. Without an RNG
//	every node gets aktiflik 0.5 and etkilesim 1.
//
// Guarantees:
//
//   - Determinism: same options, same seed and same constructor order ⇒ the
//     same nodes, the same edge creation order and therefore the same weights.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is(err, ErrTooFewVertices), ...).
package builder
