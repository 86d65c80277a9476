package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/socialgraph/core"
)

// frame is one stack entry; the same node may be pushed more than once.
type frame struct {
	id, parent, depth int
	root              bool
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph core.Reader
	opts  DFSOptions
	stack []frame
	res   *DFSResult
}

// DFS performs iterative depth-first search on g from start, or over every
// component when WithFullTraversal is set.
//
// Neighbors are pushed in descending id order so the smallest id is explored
// first; the visited check happens at pop time, so a node can sit on the
// stack more than once but is visited exactly once.
func DFS(g core.Reader, start int, opts ...Option) (*DFSResult, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	ids := g.NodeIDs()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		res: &DFSResult{
			Order:  make([]int, 0, len(ids)),
			Depth:  make(map[int]int, len(ids)),
			Parent: make(map[int]int, len(ids)),
		},
	}

	if !dopts.FullTraversal {
		return w.res, w.traverse(start)
	}
	for _, id := range ids {
		if w.res.Visited(id) {
			continue
		}
		if err := w.traverse(id); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse drains one DFS tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	w.res.Roots = append(w.res.Roots, root)
	w.stack = append(w.stack[:0], frame{id: root, root: true})

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.Visited(top.id) {
			continue
		}

		w.res.Depth[top.id] = top.depth
		if !top.root {
			w.res.Parent[top.id] = top.parent
		}
		w.res.Order = append(w.res.Order, top.id)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.id, top.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", top.id, err)
			}
		}

		w.pushNeighbors(top)
	}

	return nil
}

// pushNeighbors pushes unvisited neighbors of f in descending id order.
func (w *dfsWalker) pushNeighbors(f frame) {
	if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
		return
	}
	nbs := w.graph.Neighbors(f.id)
	sort.Sort(sort.Reverse(sort.IntSlice(nbs)))
	for _, nid := range nbs {
		if w.res.Visited(nid) {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(f.id, nid) {
			continue
		}
		w.stack = append(w.stack, frame{id: nid, parent: f.id, depth: f.depth + 1})
	}
}
