// Package core defines the central Graph, Node, and Edge types together with
// the sentinel errors and the NewGraph constructor.
//
// A single sync.RWMutex (mu) protects nodes, edges, the pair index and the
// adjacency lists, so every exported method observes a consistent snapshot.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations. Mutations do not return them
// directly; they surface through Outcome.Err.
var (
	// ErrNodeExists indicates AddNode was called with an id already present.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrInvalidNode indicates a negative id, an empty name or a non-finite
	// attribute.
	ErrInvalidNode = errors.New("core: invalid node")

	// ErrEdgeExists indicates AddEdge was called on an already connected pair.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates RemoveEdge was called on an unconnected pair.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Infinity is the sentinel weight/cost meaning "no finite path or edge".
// It is never the result of a weight computation.
var Infinity = math.Inf(1)

// Node is a social-network user.
type Node struct {
	// ID is the unique, non-negative primary key. Immutable once added.
	ID int `json:"id"`

	// Name is the display label; must be non-empty.
	Name string `json:"name"`

	// Aktiflik is the activity score used by the weight formula and the A* heuristic.
	// Aktiflik and Etkilesim must be finite.
	Aktiflik float64 `json:"aktiflik"`

	// Etkilesim is the interaction score used by the weight formula.
	Etkilesim float64 `json:"etkilesim"`
}

// valid reports whether n may be stored: non-negative id, a name and finite
// attributes.
func (n Node) valid() bool {
	return n.ID >= 0 && n.Name != "" && finite(n.Aktiflik) && finite(n.Etkilesim)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Edge is an undirected, weighted relationship between two distinct nodes.
//
// Source and Target keep the order the edge was requested in; the relation
// itself is symmetric.
type Edge struct {
	Source int `json:"source"`
	Target int `json:"target"`

	// Weight is 1 + sqrt(Δaktiflik² + Δetkilesim² + Δdegree²).
	Weight float64 `json:"weight"`

	// degreeDelta is Δdegree captured at insertion time and reused whenever
	// the weight is recomputed after an attribute update.
	degreeDelta float64
}

// DegreeDelta reports the degree difference frozen into the edge at creation.
func (e Edge) DegreeDelta() float64 { return e.degreeDelta }

// Other returns the endpoint opposite to id. The result is meaningless if id
// is not an endpoint of e.
func (e Edge) Other(id int) int {
	if e.Source == id {
		return e.Target
	}

	return e.Source
}

// pairKey is the canonical (lo, hi) key of an unordered node pair.
type pairKey struct{ lo, hi int }

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node catalog and adjacency maps for n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.nodes = make(map[int]*Node, n)
		g.adjacency = make(map[int][]int, n)
		g.order = make([]int, 0, n)
	}
}

// Graph owns all nodes and edges and is the sole mutator of degree-dependent
// state.
//
// Storage:
//   - nodes:     id → *Node
//   - order:     node ids in insertion order (deterministic iteration)
//   - edges:     edges in creation order
//   - index:     unordered pair → *Edge for O(1) lookups
//   - adjacency: id → neighbor ids in edge-creation order, kept symmetric
type Graph struct {
	mu sync.RWMutex

	nodes     map[int]*Node
	order     []int
	edges     []*Edge
	index     map[pairKey]*Edge
	adjacency map[int][]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int]*Node),
		index:     make(map[pairKey]*Edge),
		adjacency: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
