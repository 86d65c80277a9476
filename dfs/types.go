// Package dfs defines types and options for depth-first search traversal,
// including cancellation, a pre-order hook, depth limiting, neighbor filtering
// and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node does not exist.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is popped and first visited.
	// Returning an error aborts traversal with that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if non-negative, stops pushing neighbors deeper than this.
	// 0 visits only the start node. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before it is
	// pushed; false skips it.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal restarts from every unvisited node, in insertion order,
	// covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns background context, no hook, no depth limit, no
// filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters neighbor ids before they are pushed.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over all nodes.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they were first visited (pre-order).
	Order []int

	// Depth maps each node to the depth at which it was visited.
	Depth map[int]int

	// Parent maps each node to the node whose expansion pushed the entry it
	// was visited from. Roots do not appear.
	Parent map[int]int

	// Roots lists the start of every DFS tree (one unless FullTraversal).
	Roots []int
}

// Visited reports whether id was reached.
func (r *DFSResult) Visited(id int) bool {
	_, ok := r.Depth[id]

	return ok
}
