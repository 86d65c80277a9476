package astar

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dijkstra"
)

// ErrNilGraph indicates that a nil graph was passed.
var ErrNilGraph = errors.New("astar: graph is nil")

// Heuristic estimates the remaining cost from a node to the goal.
type Heuristic func(n, goal core.Node) float64

// AktiflikDistance is the default heuristic |aktiflik(n) − aktiflik(goal)|.
func AktiflikDistance(n, goal core.Node) float64 {
	return math.Abs(n.Aktiflik - goal.Aktiflik)
}

// Options configures a search.
type Options struct {
	Heuristic Heuristic

	// OnExpand, if set, observes every settled node in expansion order.
	OnExpand func(id int)
}

// Option customises a search.
type Option func(*Options)

// WithHeuristic replaces the default heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}

	return func(o *Options) { o.Heuristic = h }
}

// WithOnExpand registers an expansion observer.
func WithOnExpand(fn func(id int)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// ShortestPath runs A* from start to end. See the package doc for the
// result conventions.
func ShortestPath(g core.Reader, start, end int, opts ...Option) (dijkstra.Result, error) {
	if core.IsNil(g) {
		return dijkstra.NoPath(), ErrNilGraph
	}
	cfg := Options{Heuristic: AktiflikDistance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasNode(start) {
		return dijkstra.NoPath(), fmt.Errorf("astar: start %d: %w", start, core.ErrNodeNotFound)
	}
	goal, ok := g.Node(end)
	if !ok {
		return dijkstra.NoPath(), fmt.Errorf("astar: end %d: %w", end, core.ErrNodeNotFound)
	}

	s := &search{
		g:        g,
		cfg:      cfg,
		goal:     goal,
		gScore:   map[int]float64{start: 0},
		cameFrom: make(map[int]int),
		closed:   make(map[int]bool),
	}
	s.push(start, 0)
	if !s.run(end) {
		return dijkstra.NoPath(), nil
	}

	return dijkstra.Result{Path: s.reconstruct(start, end), Cost: s.gScore[end]}, nil
}

// search holds the mutable A* state.
type search struct {
	g        core.Reader
	cfg      Options
	goal     core.Node
	gScore   map[int]float64
	cameFrom map[int]int
	closed   map[int]bool
	open     openSet
}

func (s *search) push(id int, g float64) {
	h := 0.0
	if n, ok := s.g.Node(id); ok {
		h = s.cfg.Heuristic(n, s.goal)
	}
	heap.Push(&s.open, &openItem{id: id, f: g + h, g: g})
}

// run expands nodes until end is popped; reports whether it was reached.
func (s *search) run(end int) bool {
	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(*openItem)
		if s.closed[cur.id] || cur.g > s.gScore[cur.id] {
			continue
		}
		s.closed[cur.id] = true
		if s.cfg.OnExpand != nil {
			s.cfg.OnExpand(cur.id)
		}
		if cur.id == end {
			return true
		}

		for _, nb := range s.g.Neighbors(cur.id) {
			w := s.g.EdgeWeight(cur.id, nb)
			if math.IsInf(w, 1) {
				continue
			}
			tentative := cur.g + w
			if best, seen := s.gScore[nb]; seen && tentative >= best {
				continue
			}
			s.gScore[nb] = tentative
			s.cameFrom[nb] = cur.id
			// a strictly better g reopens a closed node
			delete(s.closed, nb)
			s.push(nb, tentative)
		}
	}

	return false
}

func (s *search) reconstruct(start, end int) []int {
	path := []int{end}
	for cur := end; cur != start; {
		cur = s.cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// openItem is a frontier entry; g is kept to detect stale entries.
type openItem struct {
	id int
	f  float64
	g  float64
}

// openSet is a min-heap ordered by (f, id).
type openSet []*openItem

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}

	return o[i].id < o[j].id
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x interface{}) { *o = append(*o, x.(*openItem)) }

func (o *openSet) Pop() interface{} {
	old := *o
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]

	return it
}
