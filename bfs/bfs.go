// Package bfs provides breadth-first search over a core.Reader,
// returning hop distances, parent links, and discovery order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Reader
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
//
// Nodes are marked visited when enqueued, and neighbors are expanded in
// g.Neighbors order, so Order is fully determined by edge insertion order.
//
// Returns ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, the context
// error on cancellation, or a wrapped OnVisit error.
func BFS(g core.Reader, start int, opts ...Option) (*BFSResult, error) {
	if core.IsNil(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, 16),
		res: &BFSResult{
			Order:  make([]int, 0, 16),
			Depth:  make(map[int]int),
			Parent: make(map[int]int),
		},
	}
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int, hasParent bool) {
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, next, item.id, true)
		}
	}
}
