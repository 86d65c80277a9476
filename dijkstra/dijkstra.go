package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/socialgraph/core"
)

// ShortestPath returns the minimum-cost path from start to end.
//
// The frontier is a min-heap keyed by (distance, node id), so equal
// distances pop the smaller id first. Search stops as soon as end is popped.
// Stale heap entries are skipped; pairs without an edge (Infinity weight)
// are never relaxed.
//
// Returns:
//   - start == end: Path [start], Cost 0.
//   - unreachable end: NoPath() and a nil error.
//   - unknown start or end: NoPath() and an error wrapping core.ErrNodeNotFound.
//   - nil graph: NoPath() and ErrNilGraph.
//
// Complexity: O((V + E) log V).
func ShortestPath(g core.Reader, start, end int) (Result, error) {
	if core.IsNil(g) {
		return NoPath(), ErrNilGraph
	}
	if err := checkEndpoints(g, start, end); err != nil {
		return NoPath(), err
	}

	r := newRunner(g, DefaultOptions())
	r.run(start, end, true)

	return r.path(start, end), nil
}

// Distances runs a full single-source search and returns the distance and
// predecessor of every reached node. Unreached nodes are absent from both maps.
func Distances(g core.Reader, source int, opts ...Option) (map[int]float64, map[int]int, error) {
	if core.IsNil(g) {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("dijkstra: source %d: %w", source, core.ErrNodeNotFound)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := newRunner(g, cfg)
	r.run(source, 0, false)

	return r.dist, r.prev, nil
}

func checkEndpoints(g core.Reader, start, end int) error {
	if !g.HasNode(start) {
		return fmt.Errorf("dijkstra: start %d: %w", start, core.ErrNodeNotFound)
	}
	if !g.HasNode(end) {
		return fmt.Errorf("dijkstra: end %d: %w", end, core.ErrNodeNotFound)
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Reader
	options Options
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

func newRunner(g core.Reader, cfg Options) *runner {
	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64),
		prev:    make(map[int]int),
		visited: make(map[int]bool),
		pq:      make(nodePQ, 0, 16),
	}
}

// run settles nodes in (distance, id) order from source. With hasTarget it
// stops when target is popped.
func (r *runner) run(source, target int, hasTarget bool) {
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if hasTarget && u == target {
			return
		}
		r.relax(u, item.dist)
	}
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u int, du float64) {
	for _, v := range r.g.Neighbors(u) {
		w := r.g.EdgeWeight(u, v)
		if math.IsInf(w, 1) {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.dist[v]; ok && nd >= cur {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// path walks predecessors back from end.
func (r *runner) path(start, end int) Result {
	d, ok := r.dist[end]
	if !ok {
		return NoPath()
	}

	return Result{Path: walkBack(r.prev, start, end), Cost: d}
}

// walkBack rebuilds start→end from a predecessor map.
func walkBack(prev map[int]int, start, end int) []int {
	path := []int{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id), used with lazy
// decrease-key: improved distances push a fresh entry and the outdated one is
// ignored when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
