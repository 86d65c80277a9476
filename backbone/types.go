// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, method selection and the result shape.

package backbone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/socialgraph/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("backbone: graph is nil")

// ErrUnknownMethod is returned by ParseMethod and Compute for an
// unrecognized method.
var ErrUnknownMethod = errors.New("backbone: unknown method")

// Method selects the spanning-forest algorithm.
type Method string

const (
	// Kruskal sorts every tie once and merges communities with union-find.
	Kruskal Method = "kruskal"

	// Prim grows one tree per community from its first node with a min-heap.
	Prim Method = "prim"
)

// ParseMethod maps a case-insensitive name onto a Method. Empty means Kruskal.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Kruskal):
		return Kruskal, nil
	case string(Prim):
		return Prim, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Result is a minimum spanning forest.
type Result struct {
	// Edges are the kept ties, in the order the algorithm accepted them.
	Edges []core.Edge `json:"edges"`

	// Total is the summed weight of Edges.
	Total float64 `json:"total"`

	// Trees is the number of trees, one per connected component.
	Trees int `json:"trees"`
}

// Compute dispatches to the selected method.
func Compute(g core.Reader, m Method) (Result, error) {
	switch m {
	case Kruskal, "":
		return KruskalForest(g)
	case Prim:
		return PrimForest(g)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
}
