// SPDX-License-Identifier: MIT
//
// File: outcome.go
// Role: Mutation result values.
//
// Every mutating Graph method reports what happened instead of panicking or
// returning a bare error. Non-Applied outcomes are guaranteed no-ops.

package core

// Outcome describes the effect of a mutation.
type Outcome uint8

const (
	// OutcomeApplied means the graph changed.
	OutcomeApplied Outcome = iota

	// OutcomeExists means the node or edge was already present.
	OutcomeExists

	// OutcomeNotFound means a referenced node or edge is absent.
	OutcomeNotFound

	// OutcomeSelfLoop means AddEdge was called with identical endpoints.
	OutcomeSelfLoop

	// OutcomeInvalid means the input failed validation (negative id, empty name).
	OutcomeInvalid
)

// Applied reports whether the mutation changed the graph.
func (o Outcome) Applied() bool { return o == OutcomeApplied }

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeExists:
		return "exists"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeSelfLoop:
		return "self_loop"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Err maps the outcome to a sentinel error; nil for OutcomeApplied.
//
// Exists and NotFound are ambiguous between nodes and edges, so callers that
// need the edge flavour use EdgeErr.
func (o Outcome) Err() error {
	switch o {
	case OutcomeApplied:
		return nil
	case OutcomeExists:
		return ErrNodeExists
	case OutcomeNotFound:
		return ErrNodeNotFound
	case OutcomeSelfLoop:
		return ErrSelfLoop
	default:
		return ErrInvalidNode
	}
}

// EdgeErr is Err for outcomes returned by AddEdge/RemoveEdge: Exists maps to
// ErrEdgeExists, and NotFound maps to ErrEdgeNotFound when both endpoints are
// known (missingNode == false).
func (o Outcome) EdgeErr(missingNode bool) error {
	switch o {
	case OutcomeExists:
		return ErrEdgeExists
	case OutcomeNotFound:
		if missingNode {
			return ErrNodeNotFound
		}

		return ErrEdgeNotFound
	default:
		return o.Err()
	}
}
