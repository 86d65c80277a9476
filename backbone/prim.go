// SPDX-License-Identifier: MIT
//
// File: prim.go
// Role: Prim's spanning forest, one heap-driven growth per component.

package backbone

import (
	"container/heap"

	"github.com/katalvlaran/socialgraph/core"
)

// PrimForest returns the minimum spanning forest of g. Every node not yet
// reached, taken in insertion order, roots a new tree.
//
// Complexity: O(E log V). Memory: O(V + E).
func PrimForest(g core.Reader) (Result, error) {
	if core.IsNil(g) {
		return Result{}, ErrGraphNil
	}

	ids := g.NodeIDs()
	res := Result{Edges: make([]core.Edge, 0, max(len(ids)-1, 0))}
	visited := make(map[int]bool, len(ids))
	pq := &tieHeap{}
	var seq int

	push := func(u int) {
		for _, v := range g.Neighbors(u) {
			if visited[v] {
				continue
			}
			heap.Push(pq, tie{Edge: core.Edge{Source: u, Target: v, Weight: g.EdgeWeight(u, v)}, seq: seq})
			seq++
		}
	}

	for _, root := range ids {
		if visited[root] {
			continue
		}
		res.Trees++
		visited[root] = true
		push(root)
		for pq.Len() > 0 {
			t := heap.Pop(pq).(tie)
			if visited[t.Target] {
				continue
			}
			visited[t.Target] = true
			res.Edges = append(res.Edges, t.Edge)
			res.Total += t.Weight
			push(t.Target)
		}
	}

	return res, nil
}

// tie is a heap entry; seq breaks weight ties in push order.
type tie struct {
	core.Edge
	seq int
}

type tieHeap []tie

func (h tieHeap) Len() int { return len(h) }
func (h tieHeap) Less(i, j int) bool {
	if h[i].Weight != h[j].Weight {
		return h[i].Weight < h[j].Weight
	}

	return h[i].seq < h[j].seq
}
func (h tieHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *tieHeap) Push(x any)   { *h = append(*h, x.(tie)) }
func (h *tieHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]

	return t
}
