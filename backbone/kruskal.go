// SPDX-License-Identifier: MIT
//
// File: kruskal.go
// Role: Kruskal's spanning forest with path-compressed union-find.

package backbone

import (
	"sort"

	"github.com/katalvlaran/socialgraph/core"
)

// KruskalForest returns the minimum spanning forest of g.
//
// Steps:
//  1. Enumerate each unordered tie once.
//  2. Stable-sort ties by weight.
//  3. Accept a tie whenever its endpoints sit in different sets.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func KruskalForest(g core.Reader) (Result, error) {
	if core.IsNil(g) {
		return Result{}, ErrGraphNil
	}

	ids := g.NodeIDs()
	ties := candidates(g, ids)
	sort.SliceStable(ties, func(i, j int) bool { return ties[i].Weight < ties[j].Weight })

	ds := newDisjointSet(ids)
	res := Result{Edges: make([]core.Edge, 0, max(len(ids)-1, 0)), Trees: len(ids)}
	for _, e := range ties {
		if !ds.union(e.Source, e.Target) {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total += e.Weight
		res.Trees--
		if res.Trees == 1 {
			break
		}
	}

	return res, nil
}

// candidates lists every tie once as (u, v) with u inserted before v.
func candidates(g core.Reader, ids []int) []core.Edge {
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	var out []core.Edge
	for _, u := range ids {
		for _, v := range g.Neighbors(u) {
			if pos[v] <= pos[u] {
				continue
			}
			out = append(out, core.Edge{Source: u, Target: v, Weight: g.EdgeWeight(u, v)})
		}
	}

	return out
}

// disjointSet is union-find with path halving and union by rank.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet(ids []int) *disjointSet {
	ds := &disjointSet{parent: make(map[int]int, len(ids)), rank: make(map[int]int, len(ids))}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of a and b and reports whether they were distinct.
func (ds *disjointSet) union(a, b int) bool {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return false
	}
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}

	return true
}
