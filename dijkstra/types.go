// Package dijkstra defines result types, options and sentinel errors
// for Dijkstra's shortest-path algorithm on the social graph.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result is a single-pair shortest path.
//
// An unreachable or invalid pair is reported as Path == nil and
// Cost == +Inf; Reachable distinguishes it from a real path.
type Result struct {
	// Path lists node ids from start to end inclusive.
	Path []int `json:"path"`

	// Cost is the sum of edge weights along Path.
	Cost float64 `json:"cost"`
}

// NoPath returns the "no path" sentinel result.
func NoPath() Result { return Result{Path: nil, Cost: math.Inf(1)} }

// Reachable reports whether the result carries a path.
func (r Result) Reachable() bool { return len(r.Path) > 0 && !math.IsInf(r.Cost, 1) }

// Hops returns the number of edges on the path (0 when unreachable).
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Options configures single-source runs (Distances).
//
// MaxDistance – nodes whose distance would exceed this cap are not explored.
// Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}
